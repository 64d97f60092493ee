package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jokarl/osgamelist/internal/output"
	"github.com/jokarl/osgamelist/internal/schema"
)

var (
	schemaFormatFlag string
	schemaColorFlag  string
)

var schemaCmd = &cobra.Command{
	Use:   "schema [record]",
	Short: "Show the fields of entries and other records",
	Long: `Show the valid fields of a record kind in their required order, and
which of them are essential, hold URLs or may not carry comments. Without an
argument every record kind is shown.

Examples:
  osgamelist schema
  osgamelist schema developer`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().StringVar(&schemaFormatFlag, "format", "", "Output format: text, json, yaml (default from config)")
	schemaCmd.Flags().StringVar(&schemaColorFlag, "color", "", "Color mode: auto, always, never (default from config)")
}

func runSchema(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	records := schema.Records()
	if len(args) == 1 {
		r, ok := schema.LookupRecord(args[0])
		if !ok {
			names := make([]string, len(records))
			for i, r := range records {
				names[i] = r.Name
			}
			return fmt.Errorf("unknown record %q (must be one of %s)", args[0], strings.Join(names, ", "))
		}
		records = []schema.Record{r}
	}

	w := cmd.OutOrStdout()
	renderer, err := e.renderer(w, schemaFormatFlag, schemaColorFlag)
	if err != nil {
		return err
	}
	return renderer.RenderRecords(w, output.NewRecordViews(records...))
}
