// Package cmd contains the snakesub CLI commands.
package cmd

import (
	"github.com/ohsu-comp-bio/snakesub/cmd/examples"
	"github.com/ohsu-comp-bio/snakesub/cmd/qsub"
	"github.com/ohsu-comp-bio/snakesub/cmd/sbatch"
	"github.com/ohsu-comp-bio/snakesub/cmd/validate"
	"github.com/ohsu-comp-bio/snakesub/cmd/version"
	"github.com/spf13/cobra"
)

// RootCmd represents the root command
var RootCmd = &cobra.Command{
	Use:           "snakesub",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	RootCmd.AddCommand(completionCmd)
	RootCmd.AddCommand(examples.Cmd)
	RootCmd.AddCommand(genMarkdownCmd)
	RootCmd.AddCommand(qsub.NewCommand())
	RootCmd.AddCommand(sbatch.NewCommand())
	RootCmd.AddCommand(validate.NewCommand())
	RootCmd.AddCommand(version.Cmd)
}
