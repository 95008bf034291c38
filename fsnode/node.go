package fsnode

import (
	"os"
	"path/filepath"
	"strings"
)

// Node is a filesystem entity. Implementations are read-only views;
// Parent returns nil for nodes without a parent.
type Node interface {
	Parent() Node
	IsHidden() bool
	Path() string
}

// HiddenFunc decides if the entity at a path is hidden.
type HiddenFunc func(path string) bool

// DotHidden treats every node whose name starts with a '.' as hidden,
// which is the Unix convention. The special names "." and ".." are not hidden.
func DotHidden(path string) bool {
	name := filepath.Base(path)
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// StatHidden is like DotHidden, but additionally requires the node to exist.
func StatHidden(path string) bool {
	if !DotHidden(path) {
		return false
	}
	_, err := os.Lstat(path)
	return err == nil
}

// --- Path nodes ------------------------------------------------------------

// PathNode is a node identified by a filesystem path. Parents are derived
// lexically from the path: the parent of a root directory and the parent of
// a single relative path component do not exist.
type PathNode struct {
	path   string
	hidden HiddenFunc
}

var _ Node = (*PathNode)(nil)

// Option configures a path node.
type Option func(n *PathNode)

// WithHiddenFunc sets the predicate for hidden nodes. It is inherited by parents.
func WithHiddenFunc(f HiddenFunc) Option {
	return func(n *PathNode) {
		if f != nil {
			n.hidden = f
		}
	}
}

// NewPathNode creates a node for a path. The path is cleaned, but not made absolute.
func NewPathNode(path string, opts ...Option) *PathNode {
	n := &PathNode{
		path:   filepath.Clean(path),
		hidden: DotHidden,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// AbsPathNode creates a node for the absolute form of a path.
func AbsPathNode(path string, opts ...Option) (*PathNode, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return NewPathNode(abs, opts...), nil
}

// Parent is part of interface Node.
func (n *PathNode) Parent() Node {
	dir := filepath.Dir(n.path)
	if dir == n.path || dir == "." {
		return nil
	}
	return &PathNode{path: dir, hidden: n.hidden}
}

// IsHidden is part of interface Node.
func (n *PathNode) IsHidden() bool {
	return n.hidden(n.path)
}

// Path is part of interface Node.
func (n *PathNode) Path() string {
	return n.path
}

func (n *PathNode) String() string {
	return n.path
}

// --- In-memory nodes -------------------------------------------------------

// MemNode is a node of an in-memory tree, with an explicit hidden flag.
type MemNode struct {
	Name   string
	Hidden bool
	parent *MemNode
}

var _ Node = (*MemNode)(nil)

// MemRoot creates the root of an in-memory tree. Its name is "/".
func MemRoot() *MemNode {
	return &MemNode{Name: "/"}
}

// Child creates a child node.
func (m *MemNode) Child(name string, hidden bool) *MemNode {
	return &MemNode{Name: name, Hidden: hidden, parent: m}
}

// Parent is part of interface Node.
func (m *MemNode) Parent() Node {
	if m.parent == nil {
		return nil
	}
	return m.parent
}

// IsHidden is part of interface Node.
func (m *MemNode) IsHidden() bool {
	return m.Hidden
}

// Path is part of interface Node.
func (m *MemNode) Path() string {
	if m.parent == nil {
		return m.Name
	}
	return strings.TrimSuffix(m.parent.Path(), "/") + "/" + m.Name
}

func (m *MemNode) String() string {
	return m.Path()
}
