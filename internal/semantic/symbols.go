package semantic

import (
	"github.com/kolkov/juanc/internal/token"
	"github.com/kolkov/juanc/internal/types"
)

// Symbol holds information about a declared variable.
type Symbol struct {
	Name  string         // Variable name
	Type  types.Type     // Declared type
	Index int            // Declaration order, starting at 0
	Pos   token.Position // Declaration position
	Used  bool           // Whether the variable is read anywhere
}

// SymbolTable maps variable names to their symbols.
// Juan has a single program-wide scope: blocks do not open new scopes,
// so a name declared inside a si or mientras body is visible afterwards.
// Iteration follows declaration order.
type SymbolTable struct {
	symbols map[string]*Symbol
	order   []*Symbol
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
	}
}

// Define adds a new symbol.
// Returns the created symbol, or nil if the name is already defined;
// the existing entry is never overwritten.
func (st *SymbolTable) Define(name string, typ types.Type, pos token.Position) *Symbol {
	if _, exists := st.symbols[name]; exists {
		return nil
	}
	sym := &Symbol{
		Name:  name,
		Type:  typ,
		Index: len(st.order),
		Pos:   pos,
	}
	st.symbols[name] = sym
	st.order = append(st.order, sym)
	return sym
}

// Lookup searches for a symbol by name.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	sym, ok := st.symbols[name]
	return sym, ok
}

// Symbols returns all symbols in declaration order.
func (st *SymbolTable) Symbols() []*Symbol {
	return st.order
}

// Names returns all variable names in declaration order.
func (st *SymbolTable) Names() []string {
	names := make([]string, len(st.order))
	for i, sym := range st.order {
		names[i] = sym.Name
	}
	return names
}

// Len returns the number of declared variables.
func (st *SymbolTable) Len() int {
	return len(st.order)
}
