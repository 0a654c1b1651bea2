package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidydrive/namerule/cmd/config"
	"github.com/tidydrive/namerule/pkg/schema"
)

func NewShowCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a stored rule's schema",
		Args:  cobra.ExactArgs(1),
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

			var data []byte
			if asYAML {
				data, err = schema.EncodeYAML(&rule.Schema)
			} else {
				data, err = schema.EncodeJSON(&rule.Schema)
			}
			if err != nil {
				return fmt.Errorf("encode schema: %w", err)
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Output as YAML instead of JSON")

	return cmd
}
