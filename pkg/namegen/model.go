package namegen

import "unicode"

// TrigramModel is a dense count table shaped n×n×n, where n is the size of the
// alphabet. Cell (p2, p1, c) holds how often symbol c followed the ordered pair
// (p2, p1) during training, with the Terminator standing in for "name start"
// and "name end".
type TrigramModel struct {
	alphabet *Alphabet
	n        int
	counts   []int
}

// NewTrigramModel returns an empty model sized to the alphabet.
func NewTrigramModel(alphabet *Alphabet) *TrigramModel {
	m := &TrigramModel{alphabet: alphabet}
	m.Reset()
	return m
}

// Reset zeroes every count and re-sizes the table to the current alphabet.
func (m *TrigramModel) Reset() {
	m.n = m.alphabet.Len()
	m.counts = make([]int, m.n*m.n*m.n)
}

// Train folds one name into the counts. The name is lowercased first, and any
// rune outside the alphabet is skipped without breaking the context chain, so
// the context for each increment is the last two recognized symbols.
// It reports how many transitions were recorded, the final one included.
func (m *TrigramModel) Train(name string) int {
	term := m.alphabet.IndexOf(Terminator)
	p2, p1 := term, term
	recorded := 0

	for _, r := range name {
		c := m.alphabet.IndexOf(unicode.ToLower(r))
		if c < 0 || c == term {
			continue
		}
		m.counts[m.offset(p2, p1)+c]++
		p2, p1 = p1, c
		recorded++
	}
	m.counts[m.offset(p2, p1)+term]++

	return recorded + 1
}

// Row returns the counts for the context (p2, p1), indexed by symbol position.
// The slice aliases the table and must not be modified.
func (m *TrigramModel) Row(p2, p1 int) []int {
	off := m.offset(p2, p1)
	return m.counts[off : off+m.n]
}

// Count returns a single cell of the table.
func (m *TrigramModel) Count(p2, p1, c int) int {
	return m.counts[m.offset(p2, p1)+c]
}

// Size returns the length of one dimension of the table.
func (m *TrigramModel) Size() int {
	return m.n
}

// Prune zeroes every cell whose count is at most minFreq and reports how many
// non-zero cells were cleared.
func (m *TrigramModel) Prune(minFreq int) int {
	cleared := 0
	for i, c := range m.counts {
		if c > 0 && c <= minFreq {
			m.counts[i] = 0
			cleared++
		}
	}
	return cleared
}

func (m *TrigramModel) offset(p2, p1 int) int {
	return (p2*m.n + p1) * m.n
}
