package snakejob

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	tmp, err := os.MkdirTemp("", "snakesub-test-snakejob")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(tmp) })

	p := filepath.Join(tmp, "snakejob.sh")
	if err := os.WriteFile(p, []byte(content), 0755); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRead(t *testing.T) {
	script := writeScript(t, `#!/bin/sh
# properties = {"type": "single", "rule": "bwa_mem", "local": false, "input": ["r1.fq", "r2.fq"], "output": ["mapped/sample.bam"], "jobid": 3}
cd /work && bwa mem r1.fq r2.fq > mapped/sample.bam
`)

	job, err := Read(script, []string{"5", "7"})
	if err != nil {
		t.Fatal(err)
	}

	expected := &Job{
		ScriptPath:   script,
		Rule:         "bwa_mem",
		Inputs:       []string{"r1.fq", "r2.fq"},
		Outputs:      []string{"mapped/sample.bam"},
		Dependencies: []string{"5", "7"},
	}
	if diff := deep.Equal(job, expected); diff != nil {
		t.Fatal("unexpected job:", diff)
	}
}

func TestReadNoDependencies(t *testing.T) {
	script := writeScript(t, `#!/bin/sh
# properties = {"rule": "fastqc", "input": [], "output": []}
`)

	job, err := Read(script, []string{})
	if err != nil {
		t.Fatal(err)
	}
	if job.Dependencies != nil {
		t.Fatal("expected nil dependencies, got:", job.Dependencies)
	}
}

func TestReadMissingPropertiesLine(t *testing.T) {
	script := writeScript(t, `#!/bin/sh
echo "no metadata here"
`)

	_, err := Read(script, nil)
	var metaErr *MetadataError
	if !errors.As(err, &metaErr) {
		t.Fatal("expected MetadataError, got:", err)
	}
}

func TestReadCorruptProperties(t *testing.T) {
	script := writeScript(t, `#!/bin/sh
# properties = {"rule": "bwa_mem", "input": [
`)

	_, err := Read(script, nil)
	var metaErr *MetadataError
	if !errors.As(err, &metaErr) {
		t.Fatal("expected MetadataError, got:", err)
	}
}

func TestReadMissingRule(t *testing.T) {
	script := writeScript(t, `#!/bin/sh
# properties = {"input": ["a"], "output": ["b"]}
`)

	_, err := Read(script, nil)
	var metaErr *MetadataError
	if !errors.As(err, &metaErr) {
		t.Fatal("expected MetadataError, got:", err)
	}
}

// A script that cannot be opened is an I/O failure, not bad metadata.
func TestReadMissingScript(t *testing.T) {
	_, err := Read("/does/not/exist/snakejob.sh", nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	var metaErr *MetadataError
	if errors.As(err, &metaErr) {
		t.Fatal("expected a plain I/O error, got MetadataError")
	}
}

// The properties line is matched at the start of a line only.
func TestReadIndentedPropertiesIgnored(t *testing.T) {
	script := writeScript(t, `#!/bin/sh
  # properties = {"rule": "indented"}
# properties = {"rule": "real_rule", "input": [], "output": []}
`)

	job, err := Read(script, nil)
	if err != nil {
		t.Fatal(err)
	}
	if job.Rule != "real_rule" {
		t.Fatal("unexpected rule:", job.Rule)
	}
}
