// Package compute contains the batch submission backends.
package compute

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/kballard/go-shellquote"
	"github.com/ohsu-comp-bio/snakesub/config"
	"github.com/ohsu-comp-bio/snakesub/logger"
	"github.com/ohsu-comp-bio/snakesub/snakejob"
	"github.com/ohsu-comp-bio/snakesub/util"
)

// Backend represents a batch submission backend such as Grid Engine or
// Slurm. The per-backend packages fill in the function fields.
type Backend struct {
	// Name is the backend name, e.g. "gridengine".
	Name string
	// SubmitCmd is the submission tool run once per job, e.g. "qsub".
	SubmitCmd string
	Conf      config.Config
	Log       *logger.Logger
	// EncodeDeps renders a dependency list as the backend's hold
	// arguments. An empty list encodes to the empty string.
	EncodeDeps func(deps []string) string
	// BuildArgs renders the full submit tool argument list.
	BuildArgs func(job *snakejob.Job, res *config.Resources, dep string) ([]string, error)
	// ExtractID pulls the scheduler job id out of the submit tool
	// output.
	ExtractID func(out string) (int, error)
}

// Submit submits a job via "qsub", "sbatch", etc. and returns the
// scheduler-assigned job id.
func (b *Backend) Submit(job *snakejob.Job) (int, error) {
	res, err := b.Conf.ResolveRule(job.Rule)
	if err != nil {
		return 0, err
	}

	// Create the output directory up front, so the scheduler log can
	// land next to the first output file.
	if len(job.Outputs) > 0 {
		abs, aerr := filepath.Abs(job.Outputs[0])
		if aerr != nil {
			return 0, aerr
		}
		if derr := util.EnsurePath(abs); derr != nil {
			return 0, fmt.Errorf("creating output directory for %s: %s", abs, derr)
		}
	}

	dep := b.EncodeDeps(job.Dependencies)

	args, err := b.BuildArgs(job, res, dep)
	if err != nil {
		return 0, err
	}

	b.Log.Info("Submitting job",
		"rule", job.Rule,
		"script", job.ScriptPath,
		"cmd", shellquote.Join(append([]string{b.SubmitCmd}, args...)...),
	)

	out, err := exec.Command(b.SubmitCmd, args...).CombinedOutput()
	if err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return 0, fmt.Errorf("running %s: %s", b.SubmitCmd, err)
		}
		// The tool may print a submission banner and still exit
		// non-zero. Id extraction decides whether that is fatal.
		b.Log.Warn("Submit command exited with an error",
			"error", err, "output", string(out))
	}

	id, err := b.ExtractID(string(out))
	if err != nil {
		return 0, err
	}

	b.Log.Info("Job submitted", "rule", job.Rule, "id", id)
	return id, nil
}

// LogFile returns the path the scheduler writes the job's stdout log to.
// The log lands next to the job's first output file; jobs with no
// outputs fall back to a name derived from the rule.
func LogFile(job *snakejob.Job, tag string) string {
	if len(job.Outputs) > 0 {
		return job.Outputs[0] + "-" + tag + ".out"
	}
	return fmt.Sprintf("snakemake-%s-%s.out", job.Rule, tag)
}

// ErrFile returns the path the scheduler writes the job's stderr log to.
func ErrFile(job *snakejob.Job, tag string) string {
	if len(job.Outputs) > 0 {
		return job.Outputs[0] + "-" + tag + ".err"
	}
	return fmt.Sprintf("snakemake-%s-%s.err", job.Rule, tag)
}

// JobName returns the scheduler job name for a job.
func JobName(job *snakejob.Job) string {
	return "snakemake_" + job.Rule
}

// SplitExtra word-splits an extra_parameters config value using shell
// quoting rules, so values like `--gres "gpu:1"` stay intact.
func SplitExtra(extra string) ([]string, error) {
	if extra == "" {
		return nil, nil
	}
	words, err := shellquote.Split(extra)
	if err != nil {
		return nil, fmt.Errorf("bad extra_parameters %q: %s", extra, err)
	}
	return words, nil
}
