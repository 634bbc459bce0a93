package cmd

import (
	"fmt"

	"github.com/Gobd/apischema/openapi"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the OpenAPI schema of the definition",
	RunE:  runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().Bool("summary", false, "print one line per property instead of OpenAPI")
	describeCmd.Flags().String("path", "", "wrap the schema in a document with a POST endpoint at this path")
}

func runDescribe(cmd *cobra.Command, _ []string) error {
	e, err := load()
	if err != nil {
		return err
	}
	defer e.Close()

	if summary, _ := cmd.Flags().GetBool("summary"); summary {
		for _, p := range e.schema.Properties() {
			line, err := p.Summary()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", p.Path(), line)
		}
		return nil
	}

	if path, _ := cmd.Flags().GetString("path"); path != "" {
		doc := openapi.DocBase("apischema", schemaFile, "0.0.0")
		err := openapi.Post(doc, path, "post", openapi.Endpoint{
			Request:   e.schema,
			Response:  e.schema,
			Validated: true,
		})
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), doc)
	}

	ref, err := openapi.SchemaRef(e.schema)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), ref)
}
