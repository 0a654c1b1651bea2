package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tidydrive/namerule/cmd/config"
	"github.com/tidydrive/namerule/pkg/editor"
	"github.com/tidydrive/namerule/pkg/models"
	"github.com/tidydrive/namerule/pkg/store"
)

func NewNewCmd() *cobra.Command {
	var (
		description string
		fileSegs    []string
		folderSegs  []string
	)

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a naming rule from segment specs",
		Long: `Create and store a naming rule built from ordered segment specs.

Each --file-seg / --folder-seg takes either var:<variable_name> or
lit:<text>, in concatenation order.

Examples:
  namerule new invoices \
    --file-seg var:client_name --file-seg lit:_ --file-seg var:YYYY \
    --file-seg lit:- --file-seg var:MM --file-seg lit:- --file-seg var:DD \
    --folder-seg var:client_name`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed := editor.New()
			for _, spec := range fileSegs {
				seg, err := parseSegmentSpec(spec)
				if err != nil {
					return err
				}
				ed.Add(editor.TargetFile, seg)
			}
			for _, spec := range folderSegs {
				seg, err := parseSegmentSpec(spec)
				if err != nil {
					return err
				}
				ed.Add(editor.TargetFolder, seg)
			}

			s, err := config.OpenStore()
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer s.Close()

			rule := &store.Rule{
				Name:        args[0],
				Description: description,
				Schema:      ed.Schema(),
			}
			if err := s.Save(rule); err != nil {
				return fmt.Errorf("save rule: %w", err)
			}
			ed.MarkSaved()

			fmt.Printf("Created rule %q (%d file segments, %d folder segments)\n",
				rule.Name, len(rule.Schema.FilePattern), len(rule.Schema.FolderPattern))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Rule description")
	cmd.Flags().StringArrayVar(&fileSegs, "file-seg", nil, "File pattern segment (var:<name> or lit:<text>), repeatable")
	cmd.Flags().StringArrayVar(&folderSegs, "folder-seg", nil, "Folder pattern segment (var:<name> or lit:<text>), repeatable")

	return cmd
}

// parseSegmentSpec turns var:<name> / lit:<text> into a segment
func parseSegmentSpec(spec string) (models.Segment, error) {
	kind, value, found := strings.Cut(spec, ":")
	if !found {
		return models.Segment{}, fmt.Errorf("invalid segment spec %q: expected var:<name> or lit:<text>", spec)
	}
	switch kind {
	case "var":
		if value == "" {
			return models.Segment{}, fmt.Errorf("invalid segment spec %q: empty variable name", spec)
		}
		return models.NewVariable(value), nil
	case "lit":
		return models.NewLiteral(value), nil
	default:
		return models.Segment{}, fmt.Errorf("invalid segment spec %q: unknown kind %q", spec, kind)
	}
}
