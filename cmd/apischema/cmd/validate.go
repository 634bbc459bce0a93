package cmd

import (
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON payload and print the error map",
	Long: `Validate prints the nested error map of a JSON payload and exits with
status 1 when any property failed. With --sanitize the payload is sanitized
first, the way a request handler would.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("input", "-", "JSON payload file, - for stdin")
	validateCmd.Flags().Bool("sanitize", false, "sanitize the payload before validating")
}

func runValidate(cmd *cobra.Command, _ []string) error {
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

	if sanitize, _ := cmd.Flags().GetBool("sanitize"); sanitize {
		if data, err = e.schema.Sanitize(cmd.Context(), data, e.params); err != nil {
			return err
		}
	}

	if e.schema.CanSkipValidation(e.params) {
		e.logger.Info().Msg("validation skipped")
		return nil
	}

	errs, err := e.schema.Validate(cmd.Context(), data, e.params)
	if err != nil {
		return err
	}
	if errs == nil {
		e.logger.Info().Msg("valid")
		return nil
	}
	if err := writeJSON(cmd.OutOrStdout(), errs); err != nil {
		return err
	}
	return errInvalid
}
