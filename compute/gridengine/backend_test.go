package gridengine

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/ohsu-comp-bio/snakesub/compute"
	"github.com/ohsu-comp-bio/snakesub/config"
	"github.com/ohsu-comp-bio/snakesub/logger"
	"github.com/ohsu-comp-bio/snakesub/snakejob"
)

func TestNewBackend(t *testing.T) {
	b := NewBackend(config.DefaultConfig(), logger.NewLogger("test", logger.DefaultConfig()))
	if b.Name != "gridengine" {
		t.Fatal("unexpected backend name:", b.Name)
	}
	if b.SubmitCmd != "qsub" {
		t.Fatal("unexpected submit command:", b.SubmitCmd)
	}
}

func TestEncodeDeps(t *testing.T) {
	if got := encodeDeps(nil); got != "" {
		t.Fatal("expected empty hold list, got:", got)
	}
	if got := encodeDeps([]string{"5", "7"}); got != "-hold_jid 5,7" {
		t.Fatal("unexpected hold list:", got)
	}
}

func TestBuildArgs(t *testing.T) {
	gen := config.GeneralConfig{WrapperScript: "/cluster/bin/jobwrapper.sh"}
	job := &snakejob.Job{
		ScriptPath: "/tmp/snakejob.bwa_mem.5.sh",
		Rule:       "bwa_mem",
		Outputs:    []string{"mapped/sample.bam"},
	}
	res := &config.Resources{
		Queue:           "batch",
		Threads:         8,
		ExtraParameters: "-l h_vmem=4G",
	}

	args, err := buildArgs(gen, job, res, encodeDeps([]string{"5", "7"}))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"-o", "mapped/sample.bam-qsub.out",
		"-e", "mapped/sample.bam-qsub.err",
		"-hold_jid", "5,7",
		"-q", "batch",
		"-pe", "smp", "8",
		"-N", "snakemake_bwa_mem",
		"-l", "h_vmem=4G",
		"/cluster/bin/jobwrapper.sh",
		"/tmp/snakejob.bwa_mem.5.sh",
	}
	if diff := deep.Equal(args, want); diff != nil {
		t.Fatal(diff)
	}
}

func TestBuildArgsNoDeps(t *testing.T) {
	gen := config.GeneralConfig{WrapperScript: "/cluster/bin/jobwrapper.sh"}
	job := &snakejob.Job{
		ScriptPath: "/tmp/snakejob.report.1.sh",
		Rule:       "report",
	}
	res := &config.Resources{Queue: "light", Threads: 1}

	args, err := buildArgs(gen, job, res, encodeDeps(nil))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"-o", "snakemake-report-qsub.out",
		"-e", "snakemake-report-qsub.err",
		"-q", "light",
		"-pe", "smp", "1",
		"-N", "snakemake_report",
		"/cluster/bin/jobwrapper.sh",
		"/tmp/snakejob.report.1.sh",
	}
	if diff := deep.Equal(args, want); diff != nil {
		t.Fatal(diff)
	}
}

func TestBuildArgsValidation(t *testing.T) {
	job := &snakejob.Job{ScriptPath: "s.sh", Rule: "bwa_mem"}
	wrapped := config.GeneralConfig{WrapperScript: "/w.sh"}

	_, err := buildArgs(config.GeneralConfig{}, job, &config.Resources{Queue: "batch", Threads: 1}, "")
	if err == nil || !strings.Contains(err.Error(), "qsub_general.wrapper_script") {
		t.Fatal("expected wrapper script error, got:", err)
	}

	_, err = buildArgs(wrapped, job, &config.Resources{Threads: 1}, "")
	if err == nil || !strings.Contains(err.Error(), "no queue") {
		t.Fatal("expected queue error, got:", err)
	}

	_, err = buildArgs(wrapped, job, &config.Resources{Queue: "batch"}, "")
	if err == nil || !strings.Contains(err.Error(), "no threads") {
		t.Fatal("expected threads error, got:", err)
	}
}

func TestExtractID(t *testing.T) {
	id, err := extractID(`Your job 12345 ("snakemake_bwa_mem") has been submitted`)
	if err != nil {
		t.Fatal(err)
	}
	if id != 12345 {
		t.Fatal("unexpected job id:", id)
	}
}

func TestExtractIDBadOutput(t *testing.T) {
	bad := []string{
		"",
		"qsub: command not found",
		`Your job banana ("snakemake_bwa_mem") has been submitted`,
	}
	for _, in := range bad {
		_, err := extractID(in)
		var idErr *compute.SubmissionIDError
		if !errors.As(err, &idErr) {
			t.Fatalf("expected SubmissionIDError for %q, got: %v", in, err)
		}
		if !strings.HasPrefix(err.Error(), "Not a submitted job: ") {
			t.Fatal("unexpected message:", err.Error())
		}
	}
}
