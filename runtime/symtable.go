package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/symex"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// --- Tags -------------------------------------------------------

// Tag is a named expression, stored in symbol tables.
type Tag struct {
	name   string
	Expr   *symex.Expr
	Origin string // where Expr came from, e.g. "std" or a file name
}

// NewTag creates a new tag without an expression.
func NewTag(nm string) *Tag {
	return &Tag{name: nm}
}

// WithExpr sets the expression of a tag. Use as
//
//    tag := NewTag("f").WithExpr(symex.Sin(symex.Var("x")), "def")
//
func (s *Tag) WithExpr(e *symex.Expr, origin string) *Tag {
	s.Expr = e
	s.Origin = origin
	return s
}

// String is a debug Stringer for tags.
func (s *Tag) String() string {
	return fmt.Sprintf("<tag '%s' from %s>", s.Name(), s.Origin)
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
type SymbolTable struct {
	Table     map[string]*Tag
	createTag func(string) *Tag
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	var symtab = SymbolTable{
		Table:     make(map[string]*Tag),
		createTag: NewTag,
	}
	return &symtab
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
//
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.Table[tagname]
}

// ResolveOrDefineTag finds
// a tag in the table, inserts a new one if not found.
// Returns the tag and a flag, signalling wether the tag
// has already been present.
//
func (t *SymbolTable) ResolveOrDefineTag(tagname string) (*Tag, bool) {
	if len(tagname) == 0 {
		return nil, false
	}
	found := true
	tag := t.ResolveTag(tagname)
	if tag == nil { // if not already there, insert it
		tag, _ = t.DefineTag(tagname)
		found = false
	}
	return tag, found
}

// DefineTag creates a new tag to store into the symbol table.
// The tag's name may not be empty.
// Overwrites existing tag with this name, if any.
// Returns the new tag and the previously stored tag (or nil).
//
func (t *SymbolTable) DefineTag(tagname string) (*Tag, *Tag) {
	if len(tagname) == 0 {
		return nil, nil
	}
	tag := t.createTag(tagname)
	old := t.InsertTag(tag)
	return tag, old
}

// InsertTag inserts a pre-created tag. Returns the tag previously stored
// under this name, if any.
func (t *SymbolTable) InsertTag(tag *Tag) *Tag {
	old := t.ResolveTag(tag.name)
	t.Table[tag.name] = tag
	return old
}

// RemoveTag deletes a tag from the table and returns it, or nil.
func (t *SymbolTable) RemoveTag(tagname string) *Tag {
	old := t.Table[tagname]
	delete(t.Table, tagname)
	return old
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Names returns the names of all tags, sorted.
func (t *SymbolTable) Names() []string {
	names := maps.Keys(t.Table)
	slices.Sort(names)
	return names
}

// Each iterates over each tag in the table in order of names, executing a
// mapper function.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	for _, k := range t.Names() {
		mapper(k, t.Table[k])
	}
}

// === Scopes ================================================================

// Scope is a named scope, which may contain tag definitions. Scopes link back to a
// parent scope, forming a tree.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
}

// NewScope creates a new scope.
func NewScope(nm string, parent *Scope) *Scope {
	sc := &Scope{
		Name:   nm,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
	return sc
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Tags returns the symbol table of a scope.
func (s *Scope) Tags() *SymbolTable {
	return s.symtab
}

// DefineTag defines a tag in the scope. Returns the new tag and the previously
// stored tag under this key, if any.
//
func (s *Scope) DefineTag(tagname string) (*Tag, *Tag) {
	return s.symtab.DefineTag(tagname)
}

// ResolveTag finds a tag. Returns the tag (or nil) and a scope. The scope is
// the scope (of a scope-tree-path) the tag was found in.
//
func (s *Scope) ResolveTag(tagname string) (*Tag, *Scope) {
	for ; s != nil; s = s.Parent {
		if tag := s.symtab.ResolveTag(tagname); tag != nil {
			return tag, s
		}
	}
	return nil, nil
}

// ---------------------------------------------------------------------------

// ScopeTree is a stack of scopes. Scopes pushed onto it form a path of a
// tree, the base being the outermost scope.
//
type ScopeTree struct {
	ScopeBase *Scope
	ScopeTOS  *Scope
}

// Current gets the current scope of a stack (TOS).
func (scst *ScopeTree) Current() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to access scope from empty stack")
	}
	return scst.ScopeTOS
}

// Globals gets the outermost scope.
func (scst *ScopeTree) Globals() *Scope {
	if scst.ScopeBase == nil {
		panic("attempt to access global scope from empty stack")
	}
	return scst.ScopeBase
}

// PushNewScope pushes a scope onto the stack of scopes. A scope is constructed,
// including a symbol table.
func (scst *ScopeTree) PushNewScope(nm string) *Scope {
	scp := scst.ScopeTOS
	newsc := NewScope(nm, scp)
	if scp == nil { // the new scope is the global scope
		scst.ScopeBase = newsc // make new scope anchor
	}
	scst.ScopeTOS = newsc // new scope now TOS
	T().P("scope", newsc.Name).Debugf("pushing new scope")
	return newsc
}
