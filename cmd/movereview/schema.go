package main

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/online-go/movereview/internal/model"
	"github.com/online-go/movereview/internal/review"
	"github.com/spf13/cobra"
)

func schemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the review file format",
		Long: `Print a JSON Schema describing review files. With --table, describe the
JSON written by 'categorize --format json' instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, _ := cmd.Flags().GetBool("table")

			reflector := &jsonschema.Reflector{}
			var schema *jsonschema.Schema
			if table {
				schema = reflector.Reflect(&review.Table{})
			} else {
				schema = reflector.Reflect(&model.ReviewFile{})
			}

			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode schema: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().Bool("table", false, "describe the categorize JSON output")

	return cmd
}
