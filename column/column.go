package column

// Node is one column: a length-K log-probability vector and its parallel
// length-K back-state vector for a single time step.
//
// Node also carries the intrusive prev/next links that make Store a
// doubly-linked sequence; callers that hold a *Node (e.g. the decoder's
// traceback cursor) can step backward via Prev and remove the node they
// just consumed in O(1).
type Node struct {
	Prob  []float64
	State []int

	prev, next *Node
}

// Prev returns the column immediately older than n, or nil if n is the
// oldest column in its store.
func (n *Node) Prev() *Node { return n.prev }

// Store is the column store: an ordered sequence of Nodes supporting
// O(1) amortized append at the tail and O(1) removal at either end given
// a cursor, per the survivor-path design's column store invariant.
type Store struct {
	head, tail *Node
	size       int
}

// NewStore returns an empty column store.
func NewStore() *Store {
	return &Store{}
}

// Len reports the number of columns currently stored.
func (s *Store) Len() int { return s.size }

// Append adds a new column at the tail built from prob and state, and
// returns the new tail node.
//
// Complexity: O(1).
func (s *Store) Append(prob []float64, state []int) *Node {
	n := &Node{Prob: prob, State: state}
	if s.tail == nil {
		s.head, s.tail = n, n
	} else {
		n.prev = s.tail
		s.tail.next = n
		s.tail = n
	}
	s.size++

	return n
}

// Last returns the most recently appended column, or nil if the store is
// empty.
//
// Complexity: O(1).
func (s *Store) Last() *Node { return s.tail }

// Remove detaches n from the store. n must belong to s.
//
// Complexity: O(1).
func (s *Store) Remove(n *Node) {
	if n == nil {
		return
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		s.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		s.tail = n.prev
	}
	n.prev, n.next = nil, nil
	s.size--
}

// DropTailN removes the n newest columns, used by partial traceback.
// It stops early if the store becomes empty. Returns the number of
// columns actually removed.
//
// Complexity: O(n).
func (s *Store) DropTailN(n int) int {
	dropped := 0
	for i := 0; i < n && s.tail != nil; i++ {
		s.Remove(s.tail)
		dropped++
	}

	return dropped
}

// DropHeadN removes the n oldest columns, used when cleaning already-
// emitted prefixes. It stops early if the store becomes empty. Returns
// the number of columns actually removed.
//
// Complexity: O(n).
func (s *Store) DropHeadN(n int) int {
	dropped := 0
	for i := 0; i < n && s.head != nil; i++ {
		s.Remove(s.head)
		dropped++
	}

	return dropped
}

// Clear empties the store.
//
// Complexity: O(1).
func (s *Store) Clear() {
	s.head, s.tail = nil, nil
	s.size = 0
}
