package builder

import (
	"fmt"

	"k8s-profile-api/internal/config"
)

const (
	StartScript = "/local/repository/start.sh"
	StartLog    = "/home/eebpf/start.log"
)

// pyBool formats b the way the bootstrap script compares it.
func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// SecondaryCommand returns the boot command for a secondary node at address.
// Secondaries run in the background so the portal does not wait on them.
func SecondaryCommand(address string, params config.Params) string {
	return fmt.Sprintf("bash %s secondary %s %s %s %s > %s 2>&1 &",
		StartScript, address, pyBool(params.StartKubernetes), params.CNI, params.KubeProxy, StartLog)
}

// PrimaryCommand returns the boot command for the control node.
func PrimaryCommand(params config.Params) string {
	return fmt.Sprintf("bash %s primary %s %d %s %s %s > %s 2>&1",
		StartScript, NodeAddress(1), params.NodeCount, pyBool(params.StartKubernetes), params.CNI, params.KubeProxy, StartLog)
}
