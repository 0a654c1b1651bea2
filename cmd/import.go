package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tidydrive/namerule/cmd/config"
	"github.com/tidydrive/namerule/pkg/models"
	"github.com/tidydrive/namerule/pkg/schema"
	"github.com/tidydrive/namerule/pkg/store"
)

func NewImportCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a rule from an exported schema document",
		Long: `Import a schema document produced by 'namerule export'. The document
is validated before anything is stored; a structurally invalid schema is
rejected wholesale.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			var parsed *models.Schema
			switch strings.ToLower(filepath.Ext(path)) {
			case ".yaml", ".yml":
				parsed, err = schema.DecodeYAML(data)
			default:
				parsed, err = schema.DecodeJSON(data)
			}
			if err != nil {
				return err
			}

			ruleName := name
			if ruleName == "" && parsed.Metadata != nil {
				ruleName = parsed.Metadata.Name
			}
			if ruleName == "" {
				ruleName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}

			s, err := config.OpenStore()
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer s.Close()

			if _, err := s.Get(ruleName); err == nil {
				config.Logger().Warnf("overwriting existing rule %q", ruleName)
			}

			rule := &store.Rule{Name: ruleName, Schema: *parsed}
			if parsed.Metadata != nil {
				rule.Description = parsed.Metadata.Description
			}
			if err := s.Save(rule); err != nil {
				return fmt.Errorf("save rule: %w", err)
			}

			fmt.Printf("Imported rule %q from %s\n", ruleName, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Store under this name (default: schema metadata name, then file name)")

	return cmd
}
