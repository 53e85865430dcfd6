package config

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ScheduleKeyPrefix prefixes every rule entry key in the config table.
const ScheduleKeyPrefix = "schedule_"

// RuleTable maps "schedule_<rule>" keys to their entries.
type RuleTable map[string]RuleEntry

// RuleEntry is one entry in the schedule table: either a concrete
// resource record, or the name of another schedule entry to use instead.
// Exactly one of the two fields is set.
type RuleEntry struct {
	Alias     string
	Resources *Resources
}

// UnmarshalJSON decides between the alias and resource forms by the JSON
// type of the value: a string is an alias, an object is a resource
// record.
func (e *RuleEntry) UnmarshalJSON(b []byte) error {
	s := bytes.TrimSpace(b)
	if len(s) > 0 && s[0] == '"' {
		e.Resources = nil
		return json.Unmarshal(s, &e.Alias)
	}
	e.Alias = ""
	e.Resources = &Resources{}
	return json.Unmarshal(s, e.Resources)
}

// MarshalJSON writes the alias form when set, the resource form otherwise.
func (e RuleEntry) MarshalJSON() ([]byte, error) {
	if e.Alias != "" {
		return json.Marshal(e.Alias)
	}
	return json.Marshal(e.Resources)
}

// Resources describes the scheduling parameters for a single rule.
// Grid Engine entries use Queue and Threads; Slurm entries use Partition,
// Cores and the Days/Hours/Minutes time limit.
type Resources struct {
	Queue     string `json:"queue,omitempty"`
	Threads   int    `json:"threads,omitempty"`
	Partition string `json:"partition,omitempty"`
	Cores     int    `json:"cores,omitempty"`
	Days      int    `json:"days,omitempty"`
	Hours     int    `json:"hours,omitempty"`
	Minutes   int    `json:"minutes,omitempty"`
	// ExtraParameters is free-form command line text appended to the
	// submit command, e.g. "--mem 16G".
	ExtraParameters string `json:"extra_parameters,omitempty"`
}

// ResolveRule returns the resources scheduled for a rule, following at
// most one alias hop. An alias pointing at a missing entry, at a
// non-schedule key, or at another alias is a configuration error.
func (c Config) ResolveRule(rule string) (*Resources, error) {
	key := ScheduleKeyPrefix + rule

	entry, ok := c.Rules[key]
	if !ok {
		return nil, &UndefinedRuleError{Key: key}
	}
	if entry.Resources != nil {
		return entry.Resources, nil
	}

	target := entry.Alias
	if !strings.HasPrefix(target, ScheduleKeyPrefix) {
		return nil, &RedirectError{
			Key:    key,
			Target: target,
			Reason: "alias must name a schedule_ entry",
		}
	}

	next, ok := c.Rules[target]
	if !ok {
		return nil, &UndefinedRuleError{Key: target}
	}
	if next.Resources == nil {
		return nil, &RedirectError{
			Key:    key,
			Target: target,
			Reason: "alias may not point at another alias",
		}
	}
	return next.Resources, nil
}

// Validate resolves every schedule entry and collects all the broken
// ones, so a config file can be checked in one pass.
func (c Config) Validate() error {
	var merr *multierror.Error

	keys := make([]string, 0, len(c.Rules))
	for key := range c.Rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		rule := strings.TrimPrefix(key, ScheduleKeyPrefix)
		if _, err := c.ResolveRule(rule); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return merr.ErrorOrNil()
}
