package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List the fonts available for printing",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := catalogFor(cfg)
		if err != nil {
			return err
		}
		def := catalog.Default()
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tFAMILY\tSOURCE")
		for _, f := range catalog.All() {
			name := f.Name
			if f.Name == def.Name {
				name += " (default)"
			}
			source := "google fonts"
			if f.System() {
				source = "system"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", name, f.Family, source)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(fontsCmd)
}
