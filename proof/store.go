package proof

// Getter is the read side of a proof store, the only thing Verify
// consults.
type Getter[H, S comparable, V any] interface {
	Get(h H) (Node[H, S, V], bool)
}

// Store maps node hashes to nodes. A Store returned by Generate holds
// exactly the nodes on a root-to-terminal path and must not be written
// to afterwards; concurrent reads are then safe.
type Store[H, S comparable, V any] struct {
	nodes map[H]Node[H, S, V]
	order []H
}

var _ Getter[string, byte, []byte] = (*Store[string, byte, []byte])(nil)

// NewStore returns an empty Store.
func NewStore[H, S comparable, V any]() *Store[H, S, V] {
	return &Store[H, S, V]{
		nodes: make(map[H]Node[H, S, V]),
	}
}

// Put stores n under h. Storing under an existing hash replaces the node
// but keeps its original position.
func (s *Store[H, S, V]) Put(h H, n Node[H, S, V]) {
	if _, ok := s.nodes[h]; !ok {
		s.order = append(s.order, h)
	}
	s.nodes[h] = n
}

// Get returns the node stored under h.
func (s *Store[H, S, V]) Get(h H) (Node[H, S, V], bool) {
	n, ok := s.nodes[h]
	return n, ok
}

// Len returns the number of stored nodes.
func (s *Store[H, S, V]) Len() int {
	return len(s.nodes)
}

// Hashes returns the stored hashes in insertion order. For a generated
// proof this is the path order, root first.
func (s *Store[H, S, V]) Hashes() []H {
	return append([]H(nil), s.order...)
}

// Nodes returns the stored nodes in insertion order.
func (s *Store[H, S, V]) Nodes() []Node[H, S, V] {
	nodes := make([]Node[H, S, V], 0, len(s.order))
	for _, h := range s.order {
		nodes = append(nodes, s.nodes[h])
	}
	return nodes
}

// MapGetter adapts a plain map to a Getter.
type MapGetter[H, S comparable, V any] map[H]Node[H, S, V]

// Get returns the node stored under h.
func (m MapGetter[H, S, V]) Get(h H) (Node[H, S, V], bool) {
	n, ok := m[h]
	return n, ok
}
