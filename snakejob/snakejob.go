// Package snakejob reads the job description that snakemake embeds in
// the shell scripts it generates for cluster submission.
package snakejob

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// Snakemake writes one comment line of JSON metadata into every
// generated job script.
var propertiesRe = regexp.MustCompile(`^# properties = (.*)$`)

// Job describes a single snakemake job submission: the generated script
// plus the metadata read out of it. Fields are fixed once Read returns.
type Job struct {
	// ScriptPath is the path of the generated job script.
	ScriptPath string
	// Rule is the name of the snakemake rule this job runs.
	Rule string
	// Inputs and Outputs are the files the rule reads and writes.
	// Either list may be empty.
	Inputs  []string
	Outputs []string
	// Dependencies are the scheduler ids of jobs that must finish
	// before this one starts, in the order the engine passed them.
	// Nil when the job waits on nothing. The ids are opaque tokens
	// minted by the scheduler; they are never interpreted here.
	Dependencies []string
}

// MetadataError indicates a job script whose embedded metadata could not
// be understood. It covers a missing properties line, properties that do
// not decode, and properties without a rule name. It does not cover
// plain I/O failures reading the script.
type MetadataError struct {
	Script string
	Reason string
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("reading job properties from %s: %s", e.Script, e.Reason)
}

// properties is the subset of the snakemake metadata the adapter uses.
// Unknown keys (wildcards, params, jobid, ...) are ignored.
type properties struct {
	Rule   string   `json:"rule"`
	Input  []string `json:"input"`
	Output []string `json:"output"`
}

// Read parses the job script at path and returns the job description.
// deps lists the scheduler ids this job waits on; an empty list
// normalizes to nil.
func Read(path string, deps []string) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// Properties lines carry the full input/output file lists and can
	// run far past the default token limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var raw string
	found := false
	for scanner.Scan() {
		if m := propertiesRe.FindStringSubmatch(scanner.Text()); m != nil {
			raw = m[1]
			found = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, &MetadataError{Script: path, Reason: "no properties line found"}
	}

	var props properties
	if err := json.Unmarshal([]byte(raw), &props); err != nil {
		return nil, &MetadataError{Script: path, Reason: err.Error()}
	}
	if props.Rule == "" {
		return nil, &MetadataError{Script: path, Reason: "properties are missing the rule name"}
	}

	if len(deps) == 0 {
		deps = nil
	}

	return &Job{
		ScriptPath:   path,
		Rule:         props.Rule,
		Inputs:       props.Input,
		Outputs:      props.Output,
		Dependencies: deps,
	}, nil
}
