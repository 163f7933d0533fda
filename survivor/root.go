package survivor

// FindNewRoot looks for a new convergence point (root) in the graph.
//
// k is the number of hidden states (the frontier size). root is the
// caller's current root, or nil if no convergence has been found yet.
//
// When root is nil, FindNewRoot first checks that all k frontier leaves
// (the most recently appended nodes) resolve to the same null-parent
// ancestor; if they don't, it reports no new root. This phase is skipped
// once a root has already been found, since later convergence only ever
// moves the root forward.
//
// It then walks parent pointers from the tail, keeping track of the
// deepest (earliest-time) node with at least two live children — the
// latest point through which every surviving path is forced to pass.
// If that node differs from the caller's current root, it is the new
// root and delta is the number of time steps to advance by.
//
// FindNewRoot reports found=false (with a zero delta) whenever there is
// nothing new to report, including the delta-is-zero case.
//
// Complexity: O(graph size) per call.
func (g *Graph) FindNewRoot(k int, root *Node) (newRoot *Node, delta int, found bool) {
	if g.tail == nil {
		return nil, 0, false
	}

	if root == nil {
		tracedRoot := make([]*Node, k)
		leaf := g.tail
		for i := 0; i < k && leaf != nil; i++ {
			cur := leaf
			for cur != nil {
				temp := cur
				cur = cur.Parent
				if cur == nil {
					tracedRoot[i] = temp
				}
			}
			leaf = leaf.prev
		}

		for i := 1; i < k; i++ {
			if tracedRoot[i] != tracedRoot[0] {
				return nil, 0, false
			}
		}
	}

	currentTime := g.tail.Time
	var aux *Node
	for cur := g.tail; cur != nil; cur = cur.Parent {
		if cur.NumChildren >= 2 {
			aux = cur
		}
	}

	if aux == nil {
		return nil, 0, false
	}

	if aux == root {
		return nil, 0, false
	}

	delta = currentTime - aux.Time
	if delta == 0 {
		return nil, 0, false
	}

	return aux, delta, true
}
