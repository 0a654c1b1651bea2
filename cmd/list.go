package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tidydrive/namerule/cmd/config"
)

func NewListCmd() *cobra.Command {
	var listJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List stored naming rules",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.OpenStore()
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer s.Close()

			rules, err := s.List()
			if err != nil {
				return fmt.Errorf("list rules: %w", err)
			}

			if listJSON {
				data, err := json.MarshalIndent(rules, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal rules: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			if len(rules) == 0 {
				fmt.Println("No naming rules stored. Create one with 'namerule new'.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION\tFILE SEGS\tFOLDER SEGS\tUPDATED")
			for _, r := range rules {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
					r.Name, r.Description,
					len(r.Schema.FilePattern), len(r.Schema.FolderPattern),
					r.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	return cmd
}
