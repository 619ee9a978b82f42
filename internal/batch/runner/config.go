package runner

import "github.com/DjordjeVuckovic/proplogic/internal/pipeline"

const (
	DefaultWarmupRuns = 0
	DefaultRuns       = 1
)

type Config struct {
	WarmupRuns int
	Runs       int
	// Pipeline supplies the limits; suite atoms, when present, replace
	// Pipeline.Props.
	Pipeline pipeline.Config
}

func DefaultConfig() Config {
	return Config{
		WarmupRuns: DefaultWarmupRuns,
		Runs:       DefaultRuns,
		Pipeline:   pipeline.DefaultConfig(),
	}
}
