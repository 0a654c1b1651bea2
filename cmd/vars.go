package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tidydrive/namerule/cmd/config"
)

func NewVarsCmd() *cobra.Command {
	var (
		category string
		varsJSON bool
	)

	cmd := &cobra.Command{
		Use:   "vars",
		Short: "List the variables available to naming patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := config.LoadCatalog()

			vars := cat.Variables()
			if category != "" {
				vars = cat.Category(category)
			}

			if varsJSON {
				data, err := json.MarshalIndent(vars, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal variables: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			if len(vars) == 0 {
				fmt.Printf("No variables in category %q.\n", category)
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "VARIABLE\tCATEGORY\tEXAMPLE\tDESCRIPTION")
			for _, v := range vars {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.Name, v.Category, v.Example, v.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only show variables in this category")
	cmd.Flags().BoolVar(&varsJSON, "json", false, "Output as JSON")

	return cmd
}
