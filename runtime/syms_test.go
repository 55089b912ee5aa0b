package runtime

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symex"
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
	sym.WithExpr(symex.Lit(5), "test")
	if v, _ := symex.Evaluate(symtab.ResolveTag("new-sym").Expr); v != 5 {
		t.Errorf("expression of tag not stored")
	}
	if sym, _ := symtab.DefineTag(""); sym != nil {
		t.Errorf("tag with empty name should not be created")
	}
}

func TestTwoSymbolsDistinct(t *testing.T) {
	symtab := NewSymbolTable()
	sym1, _ := symtab.DefineTag("new-sym1")
	sym2, _ := symtab.DefineTag("new-sym2")
	if sym1 == sym2 {
		t.Error("2 symbols with equal name")
	}
	if symtab.Size() != 2 {
		t.Errorf("expected symbol table of size 2, is %d", symtab.Size())
	}
}

func TestResolveTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if s := symtab.ResolveTag(sym.Name()); s == nil {
		t.Error("cannot find stored symbol in table")
	}
}

func TestResolveOrDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, found := symtab.ResolveOrDefineTag(sym.Name()); !found {
		t.Error("cannot find stored symbol in table")
	}
	if _, found := symtab.ResolveOrDefineTag("other"); found {
		t.Error("tag 'other' should have been created")
	}
}

func TestDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, old := symtab.DefineTag("new-sym"); old != sym {
		t.Error("symbol should have been replaced")
	}
}

func TestNamesSorted(t *testing.T) {
	symtab := NewSymbolTable()
	for _, n := range []string{"c", "a", "b"} {
		symtab.DefineTag(n)
	}
	var order string
	symtab.Each(func(name string, _ *Tag) { order += name })
	if order != "abc" {
		t.Errorf("expected tags in order abc, got %s", order)
	}
	if symtab.RemoveTag("b") == nil || symtab.Size() != 2 {
		t.Errorf("tag b not removed")
	}
}

func TestScopeUpsearch(t *testing.T) {
	scopep := NewScope("parent", nil)
	scope := NewScope("current", scopep)
	scopep.DefineTag("new-sym")
	if sym, sc := scope.ResolveTag("new-sym"); sym == nil || sc != scopep {
		t.Errorf("expected to find symbol in parent scope")
	}
	if sym, sc := scope.ResolveTag("none"); sym != nil || sc != nil {
		t.Errorf("expected not to find undefined symbol")
	}
}

func TestScopeTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.runtime")
	defer teardown()
	//
	st := new(ScopeTree)
	g := st.PushNewScope("g")
	l := st.PushNewScope("l")
	if st.Globals() != g || st.Current() != l || l.Parent != g {
		t.Fatalf("scope tree not linked correctly")
	}
}

func TestWorkspace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.runtime")
	defer teardown()
	//
	ws := NewWorkspace()
	e, err := ws.Lookup("expr6")
	if err != nil {
		t.Fatal(err)
	}
	if e.String() != "(1.000000 / foo)" {
		t.Errorf("unexpected std expr6 = %v", e)
	}
	//
	f := symex.Sin(symex.Var("x"))
	if old, err := ws.Define("expr6", f, "test"); err != nil || old != nil {
		t.Fatalf("expected fresh user definition, got %v, %v", old, err)
	}
	tag, scope := ws.Resolve("expr6")
	g := symex.Cos(symex.Var("x"))
	if old, _ := ws.Define("expr6", g, "again"); old != f {
		t.Errorf("expected re-definition to return previous expression, got %v", old)
	}
	if again, _ := ws.Resolve("expr6"); again != tag || scope != ws.User() || tag.Origin != "again" {
		t.Errorf("expected user tag to be re-bound in place")
	}
	ws.Define("expr6", f, "test")
	if e, _ := ws.Lookup("expr6"); e != f {
		t.Errorf("user definition should shadow std expr6")
	}
	if tag, _ := ws.Std().ResolveTag("expr6"); tag.Expr == f {
		t.Errorf("user definition must not modify std scope")
	}
	if !ws.Undefine("expr6") || ws.Undefine("expr6") {
		t.Errorf("undefine should remove the user definition exactly once")
	}
	if e, _ := ws.Lookup("expr6"); e == f {
		t.Errorf("std expr6 should be visible again")
	}
	//
	if _, err := ws.Lookup("nope"); !errors.Is(err, ErrUndefined) {
		t.Errorf("expected ErrUndefined, got %v", err)
	}
	if _, err := ws.Define("", f, "test"); err == nil {
		t.Errorf("expected error for empty name")
	}
}

func TestWorkspaceImportExport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.runtime")
	defer teardown()
	//
	ws := NewWorkspace()
	names, err := ws.Import(map[string]*symex.Expr{
		"g":     symex.Var("y"),
		"expr3": symex.Lit(0),
	}, "file")
	if err != nil || len(names) != 2 || names[0] != "expr3" {
		t.Fatalf("unexpected import result %v, %v", names, err)
	}
	all := ws.Names()
	want := []string{"expr3", "expr4", "expr5", "expr6", "g", "sum"}
	if len(all) != len(want) {
		t.Fatalf("expected names %v, got %v", want, all)
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("expected names %v, got %v", want, all)
			break
		}
	}
	exprs, err := ws.Export("g", "sum")
	if err != nil || len(exprs) != 2 {
		t.Fatalf("unexpected export result %v, %v", exprs, err)
	}
	if _, err := ws.Export("g", "nope"); err == nil {
		t.Errorf("expected export of undefined name to fail")
	}
}

func TestSamples(t *testing.T) {
	s := Samples()
	if len(s) != 5 || s[0].Name != "expr3" {
		t.Fatalf("unexpected samples %v", s)
	}
	if s[0].Expr == Samples()[0].Expr {
		t.Errorf("samples should be fresh trees on every call")
	}
	if _, err := symex.Evaluate(s[4].Expr); err == nil {
		t.Errorf("sum contains variable foo and must not evaluate")
	}
}
