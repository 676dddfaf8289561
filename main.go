// Command k8s-profile generates portal requests for N-node Kubernetes
// experiments and serves the generator over HTTP.
//
//	k8s-profile generate --node-count 3 --cni Cilium --kubeproxy ebpf
//	k8s-profile serve --listen :5090
package main

import (
	"fmt"
	"os"

	"k8s-profile-api/internal/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
