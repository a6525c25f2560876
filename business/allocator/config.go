package allocator

const (
	defaultPopulationSize = 50
	defaultGenerations    = 100
	defaultMutationRate   = 0.1
	defaultCrossoverRate  = 0.7
)

// Config controls one genetic search. Seed 0 means "seed from the clock";
// tests set it for reproducible runs.
type Config struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	CrossoverRate  float64
	Seed           int64
}

func DefaultConfig() Config {
	return Config{
		PopulationSize: defaultPopulationSize,
		Generations:    defaultGenerations,
		MutationRate:   defaultMutationRate,
		CrossoverRate:  defaultCrossoverRate,
	}
}

// Merge overlays the non-zero fields of an override onto cfg.
func (cfg Config) Merge(override Config) Config {
	if override.PopulationSize > 0 {
		cfg.PopulationSize = override.PopulationSize
	}
	if override.Generations > 0 {
		cfg.Generations = override.Generations
	}
	if override.MutationRate > 0 {
		cfg.MutationRate = override.MutationRate
	}
	if override.CrossoverRate > 0 {
		cfg.CrossoverRate = override.CrossoverRate
	}
	if override.Seed != 0 {
		cfg.Seed = override.Seed
	}
	return cfg
}
