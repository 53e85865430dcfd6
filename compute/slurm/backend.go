package slurm

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
const logTag = "slurm"

// NewBackend returns a new Slurm submission backend, which submits jobs
// with "sbatch".
func NewBackend(conf config.Config, log *logger.Logger) *compute.Backend {
	b := &compute.Backend{
		Name:       "slurm",
		SubmitCmd:  "sbatch",
		Conf:       conf,
		Log:        log,
		EncodeDeps: encodeDeps,
		BuildArgs: func(job *snakejob.Job, res *config.Resources, dep string) ([]string, error) {
			return buildArgs(conf.Sbatch, job, res, dep)
		},
		ExtractID: extractID,
	}
	return b
}

// encodeDeps renders dependencies as an sbatch dependency list:
//   -d afterok:5,afterok:7
func encodeDeps(deps []string) string {
	if len(deps) == 0 {
		return ""
	}
	terms := make([]string, len(deps))
	for i, d := range deps {
		terms[i] = "afterok:" + d
	}
	return "-d " + strings.Join(terms, ",")
}

// buildArgs renders the sbatch argument list:
//   --output=<log> [dep] -A <account> -p <partition> -n <cores>
//   -t <days>-<hours>:<minutes>:00 -J snakemake_<rule>
//   [extra] <wrapper> <script>
// There is no separate error file; sbatch merges stderr into the output
// log.
func buildArgs(gen config.GeneralConfig, job *snakejob.Job, res *config.Resources, dep string) ([]string, error) {
	if gen.WrapperScript == "" {
		return nil, fmt.Errorf("sbatch_general.wrapper_script is not configured")
	}
	if gen.Account == "" {
		return nil, fmt.Errorf("sbatch_general.account is not configured")
	}
	if res.Partition == "" {
		return nil, fmt.Errorf("schedule entry for rule %q has no partition", job.Rule)
	}
	if res.Cores < 1 {
		return nil, fmt.Errorf("schedule entry for rule %q has no cores", job.Rule)
	}

	args := []string{"--output=" + compute.LogFile(job, logTag)}
	args = append(args, strings.Fields(dep)...)
	args = append(args,
		"-A", gen.Account,
		"-p", res.Partition,
		"-n", strconv.Itoa(res.Cores),
		"-t", fmt.Sprintf("%d-%d:%d:00", res.Days, res.Hours, res.Minutes),
		"-J", compute.JobName(job),
	)

	extra, err := compute.SplitExtra(res.ExtraParameters)
	if err != nil {
		return nil, err
	}
	args = append(args, extra...)

	return append(args, gen.WrapperScript, job.ScriptPath), nil
}

// extractID reads the job id from the sbatch response. Example response:
//   Submitted batch job 98765
// The id is the last whitespace-delimited token.
func extractID(in string) (int, error) {
	fields := strings.Fields(in)
	if len(fields) == 0 {
		return 0, &compute.SubmissionIDError{Output: in}
	}
	id, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, &compute.SubmissionIDError{Output: in}
	}
	return id, nil
}
