// Package commands defines the CLI command structure and flag bindings.
//
// Every command reads its flags through a viper instance so that each flag can
// also be supplied as a PROFILE_* environment variable.
package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to flag names to form environment variable names.
const EnvPrefix = "PROFILE"

// Root returns the root command for the profile CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "k8s-profile",
		Short:         "Generate portal requests for Kubernetes experiments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Generate())
	cmd.AddCommand(Parameters())
	cmd.AddCommand(Serve())
	cmd.AddCommand(Version())

	return cmd
}

func newViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.Flags())
	return v
}
