package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tidydrive/namerule/cmd/config"
	"github.com/tidydrive/namerule/pkg/namegen"
)

func NewPreviewCmd() *cobra.Command {
	var (
		varFlags   []string
		origFile   string
		dateFlag   string
		folderOnly bool
		fileOnly   bool
	)

	cmd := &cobra.Command{
		Use:   "preview <name>",
		Short: "Render file and folder names from a stored rule",
		Long: `Render the file and folder names a stored rule produces for a given
set of variable bindings.

Examples:
  namerule preview invoices --var client_name=Acme --file scan.pdf
  namerule preview invoices --var client_name=Acme --date 2024-03-05`,
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

			bindings, err := parseBindings(varFlags)
			if err != nil {
				return err
			}

			opts := namegen.Options{OriginalFileName: origFile}
			if dateFlag != "" {
				opts.Date, err = time.Parse("2006-01-02", dateFlag)
				if err != nil {
					return fmt.Errorf("parse --date %q: %w", dateFlag, err)
				}
			}

			if !folderOnly {
				name, err := namegen.GenerateFileName(rule.Schema.FilePattern, bindings, opts)
				if err != nil {
					return fmt.Errorf("file name: %w", err)
				}
				fmt.Printf("file:   %s\n", name)
			}
			if !fileOnly {
				name, err := namegen.GenerateFolderName(rule.Schema.FolderPattern, bindings, opts)
				if err != nil {
					return fmt.Errorf("folder name: %w", err)
				}
				fmt.Printf("folder: %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&varFlags, "var", nil, "Variable binding as name=value, repeatable")
	cmd.Flags().StringVar(&origFile, "file", "", "Original file name whose extension is preserved")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Date for date tokens as YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&folderOnly, "folder-only", false, "Render only the folder name")
	cmd.Flags().BoolVar(&fileOnly, "file-only", false, "Render only the file name")

	return cmd
}

// parseBindings turns repeated name=value flags into a bindings map
func parseBindings(flags []string) (map[string]string, error) {
	bindings := make(map[string]string, len(flags))
	for _, f := range flags {
		name, value, found := strings.Cut(f, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid --var %q: expected name=value", f)
		}
		bindings[name] = value
	}
	return bindings, nil
}
