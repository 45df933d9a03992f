package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/youruser/flashcards/internal/sheet"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write the example spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := sheet.WriteTemplate(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		cmd.Println("wrote", out)
		return nil
	},
}

func init() {
	templateCmd.Flags().StringP("output", "o", sheet.TemplateFilename, "output file")
	rootCmd.AddCommand(templateCmd)
}
