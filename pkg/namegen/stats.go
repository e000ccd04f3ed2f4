package namegen

// Stats holds aggregated statistics for a Generator.
type Stats struct {
	Symbols        int  // Alphabet size, Terminator included
	Contexts       int  // Number of (p2, p1) contexts with at least one transition
	Transitions    int  // Number of distinct non-zero (p2, p1, c) cells
	TotalFrequency int  // Sum of all counts; the total number of trained transitions
	StartingTokens int  // Number of distinct symbols that can start a name
	CorpusNames    int  // Distinct names in the training corpus record
	GeneratedNames int  // Names accepted this session
	Trained        bool // Whether the generator is trained
}

// Stats returns a snapshot of the generator's statistics.
func (g *Generator) Stats() Stats {
	n := g.model.Size()
	term := g.alphabet.IndexOf(Terminator)
	stats := Stats{
		Symbols:        n,
		CorpusNames:    len(g.names.corpus),
		GeneratedNames: len(g.names.generated),
		Trained:        g.trained,
	}

	for p2 := 0; p2 < n; p2++ {
		for p1 := 0; p1 < n; p1++ {
			seen := false
			for c, count := range g.model.Row(p2, p1) {
				if count == 0 {
					continue
				}
				seen = true
				stats.Transitions++
				stats.TotalFrequency += count
				if p2 == term && p1 == term && c != term {
					stats.StartingTokens++
				}
			}
			if seen {
				stats.Contexts++
			}
		}
	}
	return stats
}
