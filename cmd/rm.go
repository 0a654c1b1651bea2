package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidydrive/namerule/cmd/config"
)

func NewRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <name>",
		Short:   "Delete a stored naming rule",
		Aliases: []string{"delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.OpenStore()
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer s.Close()

			if err := s.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted rule %q\n", args[0])
			return nil
		},
	}

	return cmd
}
