package config

import (
	"github.com/ohsu-comp-bio/snakesub/logger"
)

// DefaultConfig returns configuration with simple defaults.
// There are no default schedule entries or wrapper scripts; those always
// come from the config file or flags.
func DefaultConfig() Config {
	return Config{
		Rules:  RuleTable{},
		Logger: logger.DefaultConfig(),
	}
}
