package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/docverse/prlint/lint"
)

var cfgCmd = &cobra.Command{
	Use:   "cfg",
	Short: "Print the effective rule configuration",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := lint.New(".", cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		severities := engine.RuleSeverities()
		names := make([]string, 0, len(severities))
		for name := range severities {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RULE\tSEVERITY")
		for _, name := range names {
			fmt.Fprintf(w, "%s\t%s\n", name, severities[name])
		}
		w.Flush()
	},
}
