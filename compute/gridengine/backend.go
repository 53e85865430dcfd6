package gridengine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ohsu-comp-bio/snakesub/compute"
	"github.com/ohsu-comp-bio/snakesub/config"
	"github.com/ohsu-comp-bio/snakesub/logger"
	"github.com/ohsu-comp-bio/snakesub/snakejob"
)

// logTag names this backend in scheduler log file names.
const logTag = "qsub"

// NewBackend returns a new Grid Engine submission backend, which submits
// jobs with "qsub".
func NewBackend(conf config.Config, log *logger.Logger) *compute.Backend {
	return &compute.Backend{
		Name:       "gridengine",
		SubmitCmd:  "qsub",
		Conf:       conf,
		Log:        log,
		EncodeDeps: encodeDeps,
		BuildArgs: func(job *snakejob.Job, res *config.Resources, dep string) ([]string, error) {
			return buildArgs(conf.Qsub, job, res, dep)
		},
		ExtractID: extractID,
	}
}

// encodeDeps renders dependencies as a qsub hold list:
//   -hold_jid 5,7
func encodeDeps(deps []string) string {
	if len(deps) == 0 {
		return ""
	}
	return "-hold_jid " + strings.Join(deps, ",")
}

// buildArgs renders the qsub argument list:
//   -o <log> -e <err> [hold] -q <queue> -pe smp <threads>
//   -N snakemake_<rule> [extra] <wrapper> <script>
func buildArgs(gen config.GeneralConfig, job *snakejob.Job, res *config.Resources, dep string) ([]string, error) {
	if gen.WrapperScript == "" {
		return nil, fmt.Errorf("qsub_general.wrapper_script is not configured")
	}
	if res.Queue == "" {
		return nil, fmt.Errorf("schedule entry for rule %q has no queue", job.Rule)
	}
	if res.Threads < 1 {
		return nil, fmt.Errorf("schedule entry for rule %q has no threads", job.Rule)
	}

	args := []string{
		"-o", compute.LogFile(job, logTag),
		"-e", compute.ErrFile(job, logTag),
	}
	args = append(args, strings.Fields(dep)...)
	args = append(args,
		"-q", res.Queue,
		"-pe", "smp", strconv.Itoa(res.Threads),
		"-N", compute.JobName(job),
	)

	extra, err := compute.SplitExtra(res.ExtraParameters)
	if err != nil {
		return nil, err
	}
	args = append(args, extra...)

	return append(args, gen.WrapperScript, job.ScriptPath), nil
}

// extractID reads the job id from the qsub response. Example response:
//   Your job 12345 ("snakemake_bwa_mem") has been submitted
// The id is the third whitespace-delimited token.
func extractID(in string) (int, error) {
	fields := strings.Fields(in)
	if len(fields) < 3 {
		return 0, &compute.SubmissionIDError{Output: in}
	}
	id, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, &compute.SubmissionIDError{Output: in}
	}
	return id, nil
}
