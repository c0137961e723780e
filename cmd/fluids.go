package cmd

import (
	"fmt"

	"sipli/internal/cli"
	"sipli/internal/fluid"

	"github.com/spf13/cobra"
)

var fluidsCmd = &cobra.Command{
	Use:   "fluids",
	Short: "List fluid types and hydration factors",
	RunE:  runFluids,
}

func init() {
	rootCmd.AddCommand(fluidsCmd)
}

func runFluids(_ *cobra.Command, _ []string) error {
	rows := make([][]string, 0, len(fluid.All))
	for _, t := range fluid.All {
		info := fluid.Lookup(t)
		rows = append(rows, []string{
			string(t),
			info.Icon + " " + info.DisplayName,
			cli.FormatFactor(info.Factor),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("FLUIDS"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Fluid", "Counts as"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Println("  Use the Name column with `sipli log --fluid <name>`.")
	fmt.Println()

	return nil
}
