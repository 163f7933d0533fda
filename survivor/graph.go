package survivor

// Node is one survivor-graph node: the claim that state State achieved
// the best score at time Time, with Parent pointing at the predecessor
// node (at Time-1) that produced it — or nil iff Time == 0.
//
// NumChildren counts currently-live nodes whose Parent points here,
// modulo the bookkeeping Compress defers to FreeDummyNodes (see doc.go).
type Node struct {
	State       int
	Time        int
	Parent      *Node
	NumChildren int

	prev, next *Node // insertion-order links
}

// Prev returns the node inserted immediately before n, or nil if n is
// the oldest node still in the graph.
func (n *Node) Prev() *Node { return n.prev }

// Graph is the survivor-path graph: a time-ordered sequence of nodes,
// exactly K of which are appended per time step.
type Graph struct {
	head, tail *Node
	size       int
}

// NewGraph returns an empty survivor graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Len reports the number of live nodes in the graph (node_list.size).
func (g *Graph) Len() int { return g.size }

// Tail returns the most recently appended node, or nil if the graph is
// empty.
func (g *Graph) Tail() *Node { return g.tail }

// Reset empties the graph.
func (g *Graph) Reset() {
	g.head, g.tail = nil, nil
	g.size = 0
}

// Append inserts a new node for state at time, with the given parent
// (nil iff time == 0), incrementing the parent's child count. Nodes must
// be appended in state order 0..K-1 for each time step so that Append's
// backward-offset parent lookup (performed by the caller before calling
// Append) lines up with insertion order.
//
// Complexity: O(1).
func (g *Graph) Append(state, time int, parent *Node) *Node {
	n := &Node{State: state, Time: time, Parent: parent}
	if parent != nil {
		parent.NumChildren++
	}
	if g.tail == nil {
		g.head, g.tail = n, n
	} else {
		n.prev = g.tail
		g.tail.next = n
		g.tail = n
	}
	g.size++

	return n
}

// TailBeforeStep returns the node that was the tail before the current
// time step's K nodes are appended. Callers capture this once at the
// start of update() and walk it backward via Prev to resolve each new
// node's parent, so that the walk is not confused by the new nodes being
// appended during the same step.
func (g *Graph) TailBeforeStep() *Node { return g.tail }

// StepBack walks n backward through insertion order by offset hops,
// returning the node found. It implements the "start from the previous
// last node, step backward K-i*-1 times" parent lookup of the append
// algorithm.
func StepBack(n *Node, offset int) *Node {
	for ; offset > 0 && n != nil; offset-- {
		n = n.prev
	}

	return n
}

// unlink detaches n from the insertion-order sequence. n must belong to
// g and must already have no live references to it as a Parent.
func (g *Graph) unlink(n *Node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		g.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		g.tail = n.prev
	}
	n.prev, n.next = nil, nil
	g.size--
}

// Compress performs a single backward pass over the graph, shortcutting
// parent pointers across chains that have exactly one surviving
// descendant line, and decrementing the parent link of dead leaves from
// earlier time steps. It must be called once per step, after Append and
// before FreeDummyNodes.
//
// A node skipped by a shortcut has no remaining children: Compress sets
// its NumChildren to 0 and clears its Parent (its former parent now
// counts the shortcut node in its place), so it is never decremented
// twice and is reclaimed as a dead node.
//
// Compress never removes nodes itself; removal is FreeDummyNodes' job,
// on the following pass (see doc.go on why this is two passes, not one).
//
// Complexity: O(graph size) per call.
func (g *Graph) Compress(currentTime int) {
	for cur := g.tail; cur != nil; cur = cur.prev {
		if cur.NumChildren == 0 && cur.Time != currentTime {
			if cur.Parent != nil {
				cur.Parent.NumChildren--
			}
			continue
		}

		for cur.Parent != nil && cur.Parent.NumChildren == 1 {
			skipped := cur.Parent
			cur.Parent = skipped.Parent
			skipped.Parent = nil
			skipped.NumChildren = 0
		}
	}
}

// FreeDummyNodes performs a single backward pass, unlinking every node
// with NumChildren <= 0 whose Time is not currentTime (a current-step
// leaf with no children yet is still live, it's a new frontier node).
//
// Complexity: O(graph size) per call.
func (g *Graph) FreeDummyNodes(currentTime int) {
	for cur := g.tail; cur != nil; {
		prev := cur.prev
		if cur.NumChildren <= 0 && cur.Time != currentTime {
			g.unlink(cur)
		}
		cur = prev
	}
}
