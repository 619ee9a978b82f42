package pipeline

import (
	"fmt"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/proplogic/internal/semantic"
	"github.com/DjordjeVuckovic/proplogic/internal/token"
	"github.com/DjordjeVuckovic/proplogic/internal/vm"
)

type Config struct {
	Props       []string
	MaxTokens   int
	MaxProps    int
	StackSize   int
	ProgramSize int
}

func DefaultConfig() Config {
	return Config{
		Props:       append([]string(nil), semantic.DefaultProps...),
		MaxTokens:   token.DefaultMaxTokens,
		MaxProps:    semantic.DefaultMaxProps,
		StackSize:   vm.DefaultStackSize,
		ProgramSize: vm.DefaultProgramSize,
	}
}

// LoadEnv overlays VALID_PROPS, MAX_TOKENS, STACK_SIZE and PROGRAM_SIZE on
// DefaultConfig. Unset variables keep their defaults.
func LoadEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("VALID_PROPS"); v != "" {
		props := semantic.ParsePropList(v)
		if len(props) == 0 {
			return cfg, fmt.Errorf("VALID_PROPS has no proposition names: %q", v)
		}
		cfg.Props = props
	}

	ints := []struct {
		key string
		dst *int
		min int
	}{
		{"MAX_TOKENS", &cfg.MaxTokens, 2},
		{"STACK_SIZE", &cfg.StackSize, 1},
		{"PROGRAM_SIZE", &cfg.ProgramSize, 1},
	}
	for _, it := range ints {
		v := os.Getenv(it.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s must be a number: %w", it.key, err)
		}
		if n < it.min {
			return cfg, fmt.Errorf("%s must be at least %d, got %d", it.key, it.min, n)
		}
		*it.dst = n
	}

	return cfg, nil
}
