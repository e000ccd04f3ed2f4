package namegen

import "fmt"

// Terminator is the reserved symbol that marks both "no predecessor" at the
// start of a name and "end of name" when sampled. It never appears in output.
const Terminator rune = 0

// DefaultSymbols is the alphabet a new Generator recognizes, excluding the
// Terminator.
var DefaultSymbols = []rune("abcdefghijklmnopqrstuvwxyz")

// Alphabet is an ordered set of symbols that always contains the Terminator.
// The position of a symbol is its index into every dimension of the count table.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an alphabet from the given symbols followed by the
// Terminator. Duplicate symbols are ignored.
func NewAlphabet(symbols ...rune) *Alphabet {
	a := &Alphabet{
		symbols: make([]rune, 0, len(symbols)+1),
		index:   make(map[rune]int, len(symbols)+1),
	}
	for _, s := range symbols {
		if s == Terminator {
			continue
		}
		_ = a.Add(s)
	}
	_ = a.Add(Terminator)
	return a
}

// Add appends a symbol to the end of the alphabet.
func (a *Alphabet) Add(symbol rune) error {
	if _, ok := a.index[symbol]; ok {
		return fmt.Errorf("%w: %q", ErrSymbolExists, symbol)
	}
	a.index[symbol] = len(a.symbols)
	a.symbols = append(a.symbols, symbol)
	return nil
}

// Remove deletes a symbol. Every symbol after it moves down one position.
func (a *Alphabet) Remove(symbol rune) error {
	if symbol == Terminator {
		return ErrReservedSymbol
	}
	i, ok := a.index[symbol]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	a.symbols = append(a.symbols[:i], a.symbols[i+1:]...)
	delete(a.index, symbol)
	for j := i; j < len(a.symbols); j++ {
		a.index[a.symbols[j]] = j
	}
	return nil
}

// IndexOf returns the position of symbol, or -1 if it is not a member.
func (a *Alphabet) IndexOf(symbol rune) int {
	if i, ok := a.index[symbol]; ok {
		return i
	}
	return -1
}

// Contains reports whether symbol is a member of the alphabet.
func (a *Alphabet) Contains(symbol rune) bool {
	_, ok := a.index[symbol]
	return ok
}

// Len returns the number of symbols, Terminator included.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbol returns the symbol at position i.
func (a *Alphabet) Symbol(i int) rune {
	return a.symbols[i]
}

// label renders the symbol at position i for logs, showing the Terminator as '^'.
func (a *Alphabet) label(i int) rune {
	if r := a.symbols[i]; r != Terminator {
		return r
	}
	return '^'
}

// Symbols returns a copy of the ordered symbols, Terminator included.
func (a *Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}
