// Package config contains the configuration table that maps snakemake
// rules to scheduler resources.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/ohsu-comp-bio/snakesub/logger"
)

// Top-level config file keys. Every other key must be a schedule entry.
const (
	qsubGeneralKey   = "qsub_general"
	sbatchGeneralKey = "sbatch_general"
	loggerKey        = "logger"
)

// Config describes configuration for snakesub.
//
// The file format is the JSON table used by the classic snakemake cluster
// submit scripts: a "qsub_general" or "sbatch_general" section with
// backend-wide settings, plus one "schedule_<rule>" entry per rule.
// YAML files work as well, since the parser reads JSON as a YAML subset.
type Config struct {
	Qsub   GeneralConfig
	Sbatch GeneralConfig
	Rules  RuleTable
	Logger logger.Config
}

// GeneralConfig holds per-backend submission settings that are not tied
// to a single rule.
type GeneralConfig struct {
	// WrapperScript is the path of the script handed to the scheduler.
	// The scheduler runs it with the snakemake job script as its only
	// argument.
	WrapperScript string `json:"wrapper_script"`
	// Account is the account submissions are billed to. Only sbatch
	// submissions use it.
	Account string `json:"account,omitempty"`
}

// UnmarshalJSON reads the flat config file layout: the fixed sections are
// picked out by name and every "schedule_*" key lands in the rule table.
// Other keys are ignored so config files may carry unrelated data.
func (c *Config) UnmarshalJSON(b []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	for key, val := range raw {
		var err error
		switch {
		case key == qsubGeneralKey:
			err = json.Unmarshal(val, &c.Qsub)
		case key == sbatchGeneralKey:
			err = json.Unmarshal(val, &c.Sbatch)
		case key == loggerKey:
			err = json.Unmarshal(val, &c.Logger)
		case strings.HasPrefix(key, ScheduleKeyPrefix):
			var entry RuleEntry
			if err = json.Unmarshal(val, &entry); err == nil {
				if c.Rules == nil {
					c.Rules = RuleTable{}
				}
				c.Rules[key] = entry
			}
		}
		if err != nil {
			return fmt.Errorf("parsing config key %q: %s", key, err)
		}
	}
	return nil
}

// MarshalJSON writes the flat config file layout.
func (c Config) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(c.Rules)+3)
	out[qsubGeneralKey] = c.Qsub
	out[sbatchGeneralKey] = c.Sbatch
	out[loggerKey] = c.Logger
	for key, entry := range c.Rules {
		out[key] = entry
	}
	return json.Marshal(out)
}

// ToYaml formats the configuration into YAML and returns the bytes.
func (c Config) ToYaml() ([]byte, error) {
	return yaml.Marshal(c)
}

// ToYamlFile writes the configuration to a YAML file.
func (c Config) ToYamlFile(p string) error {
	b, err := c.ToYaml()
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0600)
}

// Parse parses a JSON or YAML doc into the given Config instance.
func Parse(raw []byte, conf *Config) error {
	err := yaml.Unmarshal(raw, conf)
	if err != nil {
		return err
	}
	return nil
}

// ParseFile parses a snakesub config file, which is formatted in JSON
// or YAML, into the given Config struct.
func ParseFile(relpath string, conf *Config) error {
	if relpath == "" {
		return nil
	}

	// Try to get absolute path. If it fails, fall back to relative path.
	path, abserr := filepath.Abs(relpath)
	if abserr != nil {
		path = relpath
	}

	// Read file
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Failure reading config at path %s: %s", path, err)
	}

	// Parse file
	perr := Parse(source, conf)
	if perr != nil {
		return fmt.Errorf("Failure parsing config at path %s: %s", path, perr)
	}
	return nil
}
