package orchestration

import (
	"github.com/agbru/matreduce/internal/config"
	"github.com/agbru/matreduce/internal/partition"
)

// GetStrategiesToRun returns every registered strategy, sorted by name, in
// comparison mode, otherwise the one selected by cfg.
func GetStrategiesToRun(cfg config.AppConfig, factory *partition.Factory) []partition.Strategy {
	if cfg.Compare {
		names := factory.List()
		strategies := make([]partition.Strategy, 0, len(names))
		for _, name := range names {
			if s, err := factory.Get(name); err == nil {
				strategies = append(strategies, s)
			}
		}
		return strategies
	}
	if s, err := factory.Get(cfg.Strategy()); err == nil {
		return []partition.Strategy{s}
	}
	return nil
}
