package fsnode

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// countingNode counts calls to Parent.
type countingNode struct {
	*MemNode
	calls *int
}

func (c countingNode) Parent() Node {
	*c.calls++
	p := c.MemNode.Parent()
	if p == nil {
		return nil
	}
	return countingNode{p.(*MemNode), c.calls}
}

func paths(nodes []Node) []string {
	var p []string
	for _, n := range nodes {
		p = append(p, n.Path())
	}
	return p
}

func TestMemTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "idioms.fsnode")
	defer teardown()
	//
	file := MemRoot().Child("Users", false).Child("x", false).Child(".Hidden", true).Child("a.txt", false)
	if file.Path() != "/Users/x/.Hidden/a.txt" {
		t.Errorf("unexpected path %s", file.Path())
	}
	if !IsInsideHiddenDirectory(file) {
		t.Errorf("expected %s to be inside a hidden directory", file)
	}
	visible := MemRoot().Child("Users", false).Child("a.txt", false)
	if IsInsideHiddenDirectory(visible) {
		t.Errorf("expected %s not to be inside a hidden directory", visible)
	}
	if !IsInsideHiddenDirectory(MemRoot().Child(".a.txt", true)) {
		t.Errorf("expected a hidden start node to count")
	}
}

func TestAncestorChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "idioms.fsnode")
	defer teardown()
	//
	file := MemRoot().Child("Users", false).Child("x", false).Child("a.txt", false)
	chain := paths(Ancestors(file).List())
	expected := []string{"/Users/x/a.txt", "/Users/x", "/Users", "/"}
	if !slices.Equal(chain, expected) {
		t.Errorf("expected chain %v, is %v", expected, chain)
	}
	root := MemRoot()
	if l := Ancestors(root).List(); len(l) != 1 || l[0] != Node(root) {
		t.Errorf("expected root-only chain, is %v", l)
	}
	if l := Ancestors(nil).List(); len(l) != 0 {
		t.Errorf("expected empty chain for nil, is %v", l)
	}
}

func TestWalkIsLazy(t *testing.T) {
	calls := 0
	mem := MemRoot().Child("a", false).Child(".b", true).Child("c", false).Child("d", false)
	start := countingNode{mem, &calls}
	if !IsInsideHiddenDirectory(start) {
		t.Fatalf("expected %s to be inside a hidden directory", mem)
	}
	if calls != 2 { // d -> c -> .b
		t.Errorf("expected walk to stop at .b after 2 parent lookups, did %d", calls)
	}
	calls = 0
	seq := Ancestors(start)
	if calls != 0 {
		t.Errorf("expected creation of sequence not to look up parents")
	}
	seq.Next()
	if calls != 1 {
		t.Errorf("expected 1 parent lookup, did %d", calls)
	}
}

func TestSequenceCopies(t *testing.T) {
	file := MemRoot().Child("a", false).Child("b", false)
	seq := Ancestors(file)
	cp := seq
	cp.Next()
	cp.Next()
	if seq.First() != Node(file) {
		t.Errorf("expected advancing a copy to leave the original untouched")
	}
	n := 0
	for range seq.All() {
		n++
	}
	for range seq.All() {
		n++
	}
	if n != 6 {
		t.Errorf("expected two full walks over 3 nodes, counted %d", n)
	}
	seq.Break()
	if !seq.Done() || seq.Next() != nil {
		t.Errorf("expected broken sequence to be done")
	}
}

func TestWhere(t *testing.T) {
	file := MemRoot().Child(".a", true).Child("b", false).Child(".c", true).Child("d", false)
	hidden := paths(Ancestors(file).Where(Node.IsHidden).List())
	if !slices.Equal(hidden, []string{"/.a/b/.c", "/.a"}) {
		t.Errorf("expected hidden ancestors [/.a/b/.c /.a], are %v", hidden)
	}
	none := Ancestors(file).Where(func(Node) bool { return false })
	if !none.Done() {
		t.Errorf("expected empty filtered sequence")
	}
}

func TestPathNodeParents(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}
	cases := []struct {
		path  string
		chain []string
	}{
		{"/Users/x/.Hidden/a.txt", []string{"/Users/x/.Hidden/a.txt", "/Users/x/.Hidden", "/Users/x", "/Users", "/"}},
		{"/", []string{"/"}},
		{"a.txt", []string{"a.txt"}},
		{"a/b/", []string{"a/b", "a"}},
		{"../a", []string{"../a", ".."}},
	}
	for _, c := range cases {
		chain := paths(Ancestors(NewPathNode(c.path)).List())
		if !slices.Equal(chain, c.chain) {
			t.Errorf("%q: expected chain %v, is %v", c.path, c.chain, chain)
		}
	}
}

func TestPathNodeHidden(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "idioms.fsnode")
	defer teardown()
	//
	if !IsInsideHiddenDirectory(NewPathNode("/Users/x/.Hidden/a.txt")) {
		t.Errorf("expected .Hidden to make a.txt hidden")
	}
	if IsInsideHiddenDirectory(NewPathNode("/Users/x/a.txt")) {
		t.Errorf("expected /Users/x/a.txt not to be hidden")
	}
	if IsInsideHiddenDirectory(NewPathNode("../x/./a.txt")) {
		t.Errorf("expected . and .. not to count as hidden")
	}
}

func TestStatHidden(t *testing.T) {
	dir := t.TempDir()
	hiddenDir := filepath.Join(dir, ".cache")
	if err := os.Mkdir(hiddenDir, 0o755); err != nil {
		t.Fatal(err)
	}
	existing := NewPathNode(filepath.Join(hiddenDir, "f"), WithHiddenFunc(StatHidden))
	if !IsInsideHiddenDirectory(existing) {
		t.Errorf("expected %s to be inside existing hidden directory", existing)
	}
	missing := NewPathNode(filepath.Join(dir, ".nothere", "f"), WithHiddenFunc(StatHidden))
	if IsInsideHiddenDirectory(missing) {
		t.Errorf("expected non-existing .nothere not to count with StatHidden")
	}
}

func TestAbsPathNode(t *testing.T) {
	n, err := AbsPathNode("a.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(n.Path()) {
		t.Errorf("expected absolute path, is %s", n.Path())
	}
	last := Ancestors(n).List()
	if top := last[len(last)-1]; top.Parent() != nil {
		t.Errorf("expected chain to end at a root, ends at %s", top)
	}
}
