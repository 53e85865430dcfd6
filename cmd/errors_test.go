package cmd

import (
	"fmt"
	"testing"

	"github.com/ohsu-comp-bio/snakesub/compute"
	"github.com/ohsu-comp-bio/snakesub/config"
	"github.com/ohsu-comp-bio/snakesub/snakejob"
)

func TestExitStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{&snakejob.MetadataError{Script: "s.sh", Reason: "no properties line found"}, 2},
		{&config.UndefinedRuleError{Key: "schedule_bwa_mem"}, 2},
		{&config.RedirectError{Key: "schedule_a", Target: "b", Reason: "alias must name a schedule_ entry"}, 2},
		{&compute.SubmissionIDError{Output: "garbage"}, 2},
		{fmt.Errorf("running qsub: executable file not found"), 1},
	}

	for _, tt := range tests {
		if got := ExitStatus(tt.err); got != tt.want {
			t.Fatalf("ExitStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestExitStatusWrappedError(t *testing.T) {
	err := fmt.Errorf("reading job: %w", &snakejob.MetadataError{Script: "s.sh", Reason: "bad json"})
	if got := ExitStatus(err); got != 2 {
		t.Fatalf("ExitStatus = %d, want 2", got)
	}
}
