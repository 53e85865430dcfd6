package validate

import (
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/ohsu-comp-bio/snakesub/config"
	"github.com/spf13/cobra"
)

// NewCommand returns the validate command
func NewCommand() *cobra.Command {
	var (
		configFile string
		rule       string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a config file.",
		Long: `Validate checks that every schedule entry in a config file is complete
and that every alias points at a concrete entry. With --rule, it prints
the resources the given rule resolves to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				return fmt.Errorf("no config file given")
			}

			conf := config.DefaultConfig()
			if err := config.ParseFile(configFile, &conf); err != nil {
				return err
			}

			if rule != "" {
				res, err := conf.ResolveRule(rule)
				if err != nil {
					return err
				}
				b, err := yaml.Marshal(res)
				if err != nil {
					return err
				}
				fmt.Printf("%s resolves to:\n%s", rule, b)
				return nil
			}

			if err := conf.Validate(); err != nil {
				return err
			}
			fmt.Printf("OK: %d schedule entries\n", len(conf.Rules))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configFile, "config", "c", configFile, "Config File")
	f.StringVar(&rule, "rule", rule, "Print the resources this rule resolves to")

	return cmd
}
