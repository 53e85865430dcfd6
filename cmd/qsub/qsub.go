package qsub

import (
	"fmt"

	"github.com/ohsu-comp-bio/snakesub/cmd/util"
	"github.com/ohsu-comp-bio/snakesub/compute/gridengine"
	"github.com/ohsu-comp-bio/snakesub/config"
	"github.com/ohsu-comp-bio/snakesub/logger"
	"github.com/ohsu-comp-bio/snakesub/snakejob"
	subutil "github.com/ohsu-comp-bio/snakesub/util"
	"github.com/ohsu-comp-bio/snakesub/version"
	"github.com/spf13/cobra"
)

// DefaultConfigFile is loaded from the working directory when --config
// is not given.
const DefaultConfigFile = "config_qsub.json"

// NewCommand returns the qsub command
func NewCommand() *cobra.Command {
	cmd, _ := newCommandHooks()
	return cmd
}

type hooks struct {
	Run func(conf config.Config, deps []string, script string, log *logger.Logger) (int, error)
}

func newCommandHooks() (*cobra.Command, *hooks) {
	hooks := &hooks{
		Run: Run,
	}

	var (
		configFile = DefaultConfigFile
		conf       config.Config
		flagConf   config.Config
	)

	cmd := &cobra.Command{
		Use:   "qsub [dependency id ...] <job script>",
		Short: "Submit a snakemake job script to Grid Engine.",
		Long: `This command is meant to be called by snakemake, which passes the ids of
completed upstream jobs followed by the path of the job script. The
scheduler job id is printed to stdout, where snakemake reads it.`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error

			conf, err = util.MergeConfigFileWithFlags(configFile, flagConf)
			if err != nil {
				return fmt.Errorf("error processing config: %v", err)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, script := args[:len(args)-1], args[len(args)-1]

			log := logger.NewLogger("qsub", conf.Logger)
			log = log.WithFields("submitID", subutil.GenSubmitID())
			log.Debug("Version", version.LogFields()...)

			id, err := hooks.Run(conf, deps, script, log)
			if err != nil {
				return err
			}

			// The id is the only line snakemake reads from stdout.
			fmt.Println(id)
			return nil
		},
	}
	submitFlags := util.SubmitFlags(&flagConf, &configFile)
	cmd.SetGlobalNormalizationFunc(util.NormalizeFlags)
	f := cmd.Flags()
	f.AddFlagSet(submitFlags)

	return cmd, hooks
}

// Run reads the snakemake job script and submits it with qsub.
func Run(conf config.Config, deps []string, script string, log *logger.Logger) (int, error) {
	job, err := snakejob.Read(script, deps)
	if err != nil {
		return 0, err
	}
	return gridengine.NewBackend(conf, log).Submit(job)
}
