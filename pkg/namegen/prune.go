package namegen

import "log/slog"

// Prune removes every transition observed at most minFreq times. This trims
// rare, often noisy, transitions from the model. Contexts left with no
// transitions become unseen: generation reaching them returns
// ErrUnseenContext, or ends the name under WithDeadEndTermination.
func (g *Generator) Prune(minFreq int) int {
	cleared := g.model.Prune(minFreq)

	g.logger.Info("Model pruned",
		slog.Int("min_frequency", minFreq),
		slog.Int("transitions_removed", cleared),
	)
	return cleared
}
