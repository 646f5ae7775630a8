package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/gramorpher"
)

// Corpus is a table of symbol values. A corpus is read-only after loading and
// may be shared between goroutines.
type Corpus struct {
	symbols *SymbolTable
	names   []string
	cases   []Case
}

var _ gramorpher.SymbolProvider = (*Corpus)(nil)

// Case is one row of a corpus, binding symbol names to values.
type Case map[string]string

var _ gramorpher.ValueProvider = Case{}

// Value returns the value of a symbol in a case. Absent symbols are reported
// as not found.
func (c Case) Value(name string) (string, bool) {
	v, ok := c[name]
	return v, ok
}

// ParseFile loads a corpus from a tab-delimited file.
func ParseFile(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gramorpher.ErrCorpusLoad, err)
	}
	defer f.Close()
	return Parse(f)
}

// ParseString loads a corpus from a string.
func ParseString(s string) (*Corpus, error) {
	return Parse(strings.NewReader(s))
}

// Parse loads a corpus from a tab-delimited table. The first row holds the
// symbol names, every subsequent row is a case. All rows must have the same
// number of columns.
//
// Errors wrap gramorpher.ErrCorpusLoad.
func Parse(r io.Reader) (*Corpus, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true // PICT does not quote values
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty corpus", gramorpher.ErrCorpusLoad)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", gramorpher.ErrCorpusLoad, err)
	}
	c := &Corpus{symbols: NewSymbolTable()}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty symbol name in column %d", gramorpher.ErrCorpusLoad, i+1)
		}
		if _, old := c.symbols.DefineSymbol(name, i); old != nil {
			return nil, fmt.Errorf("%w: duplicate symbol %q", gramorpher.ErrCorpusLoad, name)
		}
		c.names = append(c.names, name)
	}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%w: %v", gramorpher.ErrCorpusLoad, err)
		}
		cs := make(Case, len(c.names))
		for i, name := range c.names {
			cs[name] = row[i]
			sym := c.symbols.ResolveSymbol(name)
			sym.Values = append(sym.Values, row[i])
		}
		c.cases = append(c.cases, cs)
	}
	tracer().Infof("corpus: %d symbols, %d cases", len(c.names), len(c.cases))
	return c, nil
}

// HasSymbol returns true if name is a symbol of the corpus.
func (c *Corpus) HasSymbol(name string) bool {
	return c.symbols.ResolveSymbol(name) != nil
}

// HasSymbols returns true if every name is a symbol of the corpus.
func (c *Corpus) HasSymbols(names []string) bool {
	for _, name := range names {
		if !c.HasSymbol(name) {
			return false
		}
	}
	return true
}

// Symbol returns a symbol of the corpus, or nil.
func (c *Corpus) Symbol(name string) *Symbol {
	return c.symbols.ResolveSymbol(name)
}

// Names returns the symbol names, in column order.
func (c *Corpus) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Cases returns the cases of the corpus, in row order.
func (c *Corpus) Cases() []Case {
	return c.cases
}
