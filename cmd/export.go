package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tidydrive/namerule/cmd/config"
	"github.com/tidydrive/namerule/pkg/models"
	"github.com/tidydrive/namerule/pkg/schema"
)

func NewExportCmd() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a rule's schema for interchange",
		Long: `Export a stored rule as a schema document other installations can
import. The export is stamped with the current time as updatedAt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.OpenStore()
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer s.Close()

			rule, err := s.Get(args[0])
			if err != nil {
				return err
			}

			exported := schema.Export(&rule.Schema, time.Now())
			exported.Metadata.Name = rule.Name
			exported.Metadata.Description = rule.Description
			if exported.Metadata.CreatedAt == "" && !rule.CreatedAt.IsZero() {
				exported.Metadata.CreatedAt = models.FormatTimestamp(rule.CreatedAt)
			}

			var data []byte
			switch format {
			case "json":
				data, err = schema.EncodeJSON(exported)
			case "yaml":
				data, err = schema.EncodeYAML(exported)
			default:
				return fmt.Errorf("unknown format %q: expected json or yaml", format)
			}
			if err != nil {
				return fmt.Errorf("encode schema: %w", err)
			}

			if output == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Printf("Exported rule %q to %s\n", rule.Name, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")

	return cmd
}
