package examples

import (
	"fmt"
	"sort"

	ex "github.com/ohsu-comp-bio/snakesub/examples"
	"github.com/spf13/cobra"
)

// Cmd represents the examples command
var Cmd = &cobra.Command{
	Use:     "examples [name]",
	Aliases: []string{"example"},
	Short:   "Print example config files.",
	RunE: func(cmd *cobra.Command, args []string) error {
		examples := ex.Examples()

		// Print a list of example names and exit
		if len(args) == 0 || args[0] == "list" {
			names := make([]string, 0, len(examples))
			for sn := range examples {
				names = append(names, sn)
			}
			sort.Strings(names)
			for _, sn := range names {
				fmt.Println(sn)
			}
			return nil
		}

		// Retrieve and print the example
		data, ok := examples[args[0]]
		if !ok {
			return fmt.Errorf("No example by the name of %s", args[0])
		}

		fmt.Println(data)
		return nil
	},
}
