package runtime

import (
	"slices"
	"testing"
)

func TestNewSymTab(t *testing.T) {
	symtab := NewSymbolTable()
	if symtab == nil {
		t.Error("no symbol table created")
	}
}

func TestNewSymbol(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if sym == nil {
		t.Fatal("no symbol created for table")
	}
	sym.Value = 5
	if symtab.ResolveTag("new-sym").Value != 5 {
		t.Errorf("Value does not work")
	}
}

func TestEmptyName(t *testing.T) {
	symtab := NewSymbolTable()
	if sym, _ := symtab.DefineTag(""); sym != nil {
		t.Error("expected empty tag name to be rejected")
	}
	if _, found := symtab.ResolveOrDefineTag(""); found {
		t.Error("expected empty tag name not to be found")
	}
}

func TestTwoSymbolsDistinctId(t *testing.T) {
	symtab := NewSymbolTable()
	sym1, _ := symtab.DefineTag("new-sym1")
	sym2, _ := symtab.DefineTag("new-sym2")
	if sym1 == sym2 {
		t.Error("2 symbols with equal name")
	}
	if !slices.Equal(symtab.Names(), []string{"new-sym1", "new-sym2"}) {
		t.Errorf("unexpected names %v", symtab.Names())
	}
}

func TestResolveOrDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, found := symtab.ResolveOrDefineTag(sym.Name()); !found {
		t.Error("cannot find stored symbol in table")
	}
	if _, found := symtab.ResolveOrDefineTag("other"); found {
		t.Error("expected 'other' to be new")
	}
	if symtab.Size() != 2 {
		t.Errorf("expected 2 tags, have %d", symtab.Size())
	}
}

func TestDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, old := symtab.DefineTag("new-sym"); old != sym {
		t.Error("symbol should have been replaced")
	}
}

func TestScopeUpsearch(t *testing.T) {
	scopep := NewScope("parent", nil)
	scope := NewScope("current", scopep)
	scopep.Bind("x", 7)
	if v, ok := scope.Resolve("x"); !ok || v != 7 {
		t.Errorf("expected x=7 from parent scope, have %d (%v)", v, ok)
	}
	scope.Bind("x", 8)
	if v, _ := scope.Resolve("x"); v != 8 {
		t.Errorf("expected inner binding to shadow outer one, have %d", v)
	}
	if _, sc := scope.ResolveTag("x"); sc != scope {
		t.Errorf("expected x to be found in %s, found in %s", scope, sc)
	}
	if _, ok := scope.Resolve("y"); ok {
		t.Error("expected y to be unbound")
	}
}
