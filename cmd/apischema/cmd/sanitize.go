package cmd

import (
	"github.com/spf13/cobra"
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize",
	Short: "Print the sanitized form of a JSON payload",
	RunE:  runSanitize,
}

func init() {
	rootCmd.AddCommand(sanitizeCmd)
	sanitizeCmd.Flags().String("input", "-", "JSON payload file, - for stdin")
}

func runSanitize(cmd *cobra.Command, _ []string) error {
	e, err := load()
	if err != nil {
		return err
	}
	defer e.Close()

	input, _ := cmd.Flags().GetString("input")
	data, err := readInput(input, cmd.InOrStdin())
	if err != nil {
		return err
	}

	out, err := e.schema.Sanitize(cmd.Context(), data, e.params)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), out)
}
