package commands

import (
	"github.com/spf13/cobra"

	"k8s-profile-api/internal/api"
	"k8s-profile-api/internal/store"
)

const (
	DefaultListen   = ":5090"
	DefaultStoreDir = "profiles"
)

// Serve returns the serve command.
func Serve() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the request generator over HTTP",
		Args:  cobra.NoArgs,
	}

	cmd.Flags().String("listen", DefaultListen, "Address to listen on")
	cmd.Flags().String("store", DefaultStoreDir, "Request store directory")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		v := newViper(cmd)

		s, err := store.New(v.GetString("store"))
		if err != nil {
			return err
		}
		return api.Serve(v.GetString("listen"), s)
	}

	return cmd
}
