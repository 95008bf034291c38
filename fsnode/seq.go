package fsnode

import "iter"

// AncestorSeq is a sequence of nodes, walking up the parent chain of a node.
// Sequences are values without hidden state: copying a sequence and advancing
// the copy leaves the original untouched. To restart a walk, create a new
// sequence with Ancestors.
type AncestorSeq struct {
	node Node
	seq  AncestorGenerator
}

// AncestorGenerator is a function type to generate the rest of a sequence.
type AncestorGenerator func() AncestorSeq

// Ancestors creates the ancestor chain of start, beginning with start itself.
// A nil start results in an empty sequence.
func Ancestors(start Node) AncestorSeq {
	if start == nil {
		return AncestorSeq{}
	}
	return AncestorSeq{start, parentOf(start)}
}

// parentOf creates a generator which asks n for its parent when called.
func parentOf(n Node) AncestorGenerator {
	return func() AncestorSeq {
		parent := n.Parent()
		if parent == nil {
			return AncestorSeq{}
		}
		tracer().Debugf("parent of %s is %s", n.Path(), parent.Path())
		return AncestorSeq{parent, parentOf(parent)}
	}
}

// Break signals a sequence to stop iterating.
func (seq *AncestorSeq) Break() {
	seq.node = nil
	seq.seq = nil
}

// Done returns true if a sequence has no current node.
func (seq *AncestorSeq) Done() bool {
	return seq.node == nil
}

// First returns the current node of a sequence, or nil for an exhausted sequence.
func (seq AncestorSeq) First() Node {
	return seq.node
}

// Next advances the sequence and returns the new current node. It returns
// nil when the sequence is exhausted.
func (seq *AncestorSeq) Next() Node {
	if seq.Done() || seq.seq == nil {
		seq.Break()
		return nil
	}
	*seq = seq.seq()
	return seq.node
}

// Any returns true if any node from the current one onwards satisfies pred.
// It stops at the first such node, and does not fetch further parents.
func (seq AncestorSeq) Any(pred func(Node) bool) bool {
	for n := seq.First(); n != nil; n = seq.Next() {
		if pred(n) {
			tracer().Debugf("%s satisfies predicate", n.Path())
			return true
		}
	}
	return false
}

// Where filters a sequence, keeping nodes which satisfy pred. The first
// matching node is searched for right away, later ones on demand.
func (seq AncestorSeq) Where(pred func(Node) bool) AncestorSeq {
	for !seq.Done() && !pred(seq.node) {
		seq.Next()
	}
	if seq.Done() {
		return AncestorSeq{}
	}
	rest := seq
	return AncestorSeq{seq.node, func() AncestorSeq {
		r := rest
		r.Next()
		return r.Where(pred)
	}}
}

// List returns the remaining nodes of a sequence as a slice.
func (seq AncestorSeq) List() []Node {
	var nodes []Node
	for n := seq.First(); n != nil; n = seq.Next() {
		nodes = append(nodes, n)
	}
	return nodes
}

// All returns the remaining nodes as an iterator, for use in range loops.
// Every loop starts at the current node of seq.
func (seq AncestorSeq) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for s := seq; !s.Done(); s.Next() {
			if !yield(s.node) {
				return
			}
		}
	}
}

// IsInsideHiddenDirectory is true if start or any of its ancestors is hidden.
func IsInsideHiddenDirectory(start Node) bool {
	return Ancestors(start).Any(Node.IsHidden)
}
