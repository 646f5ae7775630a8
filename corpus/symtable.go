package corpus

import (
	"fmt"
)

// --- Symbols ---------------------------------------------------------------

// Symbol is a named column of a corpus.
type Symbol struct {
	name   string
	Column int      // position in the header row
	Values []string // one value per case
}

// NewSymbol creates a new symbol for a column.
func NewSymbol(name string, column int) *Symbol {
	return &Symbol{name: name, Column: column}
}

// Name gets the symbol's name.
func (s *Symbol) Name() string {
	return s.name
}

// String is a debug Stringer for symbols.
func (s *Symbol) String() string {
	return fmt.Sprintf("<symbol '%s'[%d]:%d values>", s.name, s.Column, len(s.Values))
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store symbols (map-like semantics).
type SymbolTable struct {
	Table map[string]*Symbol
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{Table: make(map[string]*Symbol)}
}

// ResolveSymbol checks for a symbol in the symbol table.
// Returns a symbol or nil.
func (t *SymbolTable) ResolveSymbol(name string) *Symbol {
	return t.Table[name]
}

// DefineSymbol creates a new symbol for a column and stores it into the table.
// The symbol's name may not be empty.
// Overwrites an existing symbol with this name, if any.
// Returns the new symbol and the previously stored symbol (or nil).
//
func (t *SymbolTable) DefineSymbol(name string, column int) (*Symbol, *Symbol) {
	if len(name) == 0 {
		return nil, nil
	}
	sym := NewSymbol(name, column)
	old := t.ResolveSymbol(name)
	t.Table[name] = sym
	return sym, old
}

// Size counts the symbols in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each iterates over each symbol in the table, executing a mapper function.
// Iteration order is unspecified.
func (t *SymbolTable) Each(mapper func(string, *Symbol)) {
	for k, v := range t.Table {
		mapper(k, v)
	}
}
