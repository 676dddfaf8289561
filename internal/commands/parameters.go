package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"k8s-profile-api/internal/config"
)

// Parameters returns the parameters command.
func Parameters() *cobra.Command {
	return &cobra.Command{
		Use:   "parameters",
		Short: "Print the parameter definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(config.Definitions())
			if err != nil {
				return fmt.Errorf("failed to marshal parameter definitions: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
