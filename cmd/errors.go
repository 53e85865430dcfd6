package cmd

import (
	"errors"

	"github.com/ohsu-comp-bio/snakesub/compute"
	"github.com/ohsu-comp-bio/snakesub/config"
	"github.com/ohsu-comp-bio/snakesub/snakejob"
)

// ExitStatus maps an error to the process exit status. Status 2 marks
// failures a retry can not fix: bad job metadata, missing or broken
// schedule config, and a scheduler reply with no job id. Anything else
// exits 1.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}

	var (
		metaErr     *snakejob.MetadataError
		ruleErr     *config.UndefinedRuleError
		redirectErr *config.RedirectError
		idErr       *compute.SubmissionIDError
	)
	if errors.As(err, &metaErr) ||
		errors.As(err, &ruleErr) ||
		errors.As(err, &redirectErr) ||
		errors.As(err, &idErr) {
		return 2
	}
	return 1
}
