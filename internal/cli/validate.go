package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/rowpick/internal/logging"
	"github.com/rshade/rowpick/internal/rows"
)

func newValidateCmd() *cobra.Command {
	var itemsPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Report rows that are missing text",
		Long: "Load an items file and print a warning for every row without text. " +
			"Warnings do not fail the command; only unreadable files do.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := loadItems(itemsPath)
			if err != nil {
				return err
			}

			log := logging.FromContext(cmd.Context())
			out := cmd.OutOrStdout()
			warnings := rows.Validate(items)
			for _, w := range warnings {
				log.Warn().Ctx(cmd.Context()).Int("position", w.Position).Msg(w.Message)
				if _, err = fmt.Fprintf(out, "Warning: %s\n", w); err != nil {
					return err
				}
			}

			_, err = fmt.Fprintf(out, "%d rows, %d warnings\n", items.Len(), len(warnings))
			return err
		},
	}

	cmd.Flags().StringVar(&itemsPath, "items", "",
		"YAML or JSON file with a list of {text: ...} rows (default: built-in ten rows)")
	return cmd
}
