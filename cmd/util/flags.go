package util

import (
	"strings"

	"github.com/ohsu-comp-bio/snakesub/config"
	"github.com/spf13/pflag"
)

// SubmitFlags returns a new flag set for configuring a submission command.
func SubmitFlags(flagConf *config.Config, configFile *string) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVarP(configFile, "config", "c", *configFile, "Config File")

	f.AddFlagSet(generalFlags(flagConf))
	f.AddFlagSet(loggerFlags(flagConf))

	return f
}

func generalFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVar(&flagConf.Qsub.WrapperScript, "Qsub.WrapperScript", flagConf.Qsub.WrapperScript, "Wrapper script qsub runs ahead of the job script")
	f.StringVar(&flagConf.Sbatch.WrapperScript, "Sbatch.WrapperScript", flagConf.Sbatch.WrapperScript, "Wrapper script sbatch runs ahead of the job script")
	f.StringVar(&flagConf.Sbatch.Account, "Sbatch.Account", flagConf.Sbatch.Account, "Account sbatch jobs are billed to")

	return f
}

func loggerFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVar(&flagConf.Logger.Level, "Logger.Level", flagConf.Logger.Level, "Level of logging")
	f.StringVar(&flagConf.Logger.OutputFile, "Logger.OutputFile", flagConf.Logger.OutputFile, "File path to write logs to")
	f.StringVar(&flagConf.Logger.Formatter, "Logger.Formatter", flagConf.Logger.Formatter, "Logs formatter. One of ['text', 'json']")

	return f
}

func normalize(name string) string {
	from := []string{"-", "_"}
	to := "."
	for _, sep := range from {
		name = strings.Replace(name, sep, to, -1)
	}
	return strings.ToLower(name)
}

// NormalizeFlags allows for flags to be case and separator insensitive.
// Use it by passing it to cobra.Command.SetGlobalNormalizationFunc
func NormalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	lookup := map[string]string{"help": "help", normalize(name): name}

	f.VisitAll(func(f *pflag.Flag) {
		lookup[normalize(f.Name)] = f.Name
	})

	return pflag.NormalizedName(lookup[normalize(name)])
}
