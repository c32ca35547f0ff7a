package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/chatwin/pkg/config"
)

func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema for YAML and TOML settings files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := config.SchemaJSON()
			if err != nil {
				return fmt.Errorf("generate schema: %w", err)
			}

			return writeHighlighted(cmd.OutOrStdout(), string(b)+"\n", "json")
		},
	}
}
