// Package builder assembles the portal request document from a parameter set.
package builder

import (
	"fmt"

	"k8s-profile-api/internal/config"
	"k8s-profile-api/internal/rspec"
)

const (
	// BaseIP is the /24 every node address is allocated from. The bootstrap
	// script assumes the primary is BaseIP.1 and secondaries follow in order.
	BaseIP  = "10.10.1"
	Netmask = "255.255.255.0"

	// Bandwidth is the LAN capacity cap in kbps.
	Bandwidth int64 = 10000000

	DiskImage = "urn:publicid:IDN+apt.emulab.net+image+meshbench-PG0:kubeproxy-bm:2"

	LANName       = "lan0"
	InterfaceName = "if1"
	MountPoint    = "/mydata"
)

// NodeName returns the client id of the i-th node, counting from 1.
func NodeName(i int) string {
	return fmt.Sprintf("node%d", i)
}

// NodeAddress returns the address of the i-th node, counting from 1.
func NodeAddress(i int) string {
	return fmt.Sprintf("%s.%d", BaseIP, i)
}

// Build verifies params and returns the populated request document.
// On a parameter violation no document is returned.
func Build(params config.Params) (*rspec.Request, error) {
	if err := params.Verify(); err != nil {
		return nil, err
	}

	req := rspec.NewRequest()
	lan := rspec.NewLAN(LANName, Bandwidth)

	for i := 1; i <= params.NodeCount; i++ {
		node := newNode(i, params)
		lan.AddInterface(node.Interfaces[0])
		req.Nodes = append(req.Nodes, node)
	}

	// Secondaries first, primary last.
	for i := 1; i < len(req.Nodes); i++ {
		addExecute(&req.Nodes[i], SecondaryCommand(NodeAddress(i+1), params))
	}
	if len(req.Nodes) > 0 {
		addExecute(&req.Nodes[0], PrimaryCommand(params))
	}

	req.Links = append(req.Links, lan)
	return req, nil
}

func newNode(i int, params config.Params) rspec.Node {
	name := NodeName(i)
	return rspec.Node{
		ClientID:  name,
		Exclusive: true,
		SliverType: rspec.SliverType{
			Name:      rspec.SliverTypeRawPC,
			DiskImage: &rspec.DiskImage{Name: DiskImage},
		},
		HardwareType: rspec.HardwareType{Name: params.NodeType},
		Interfaces: []rspec.Interface{{
			ClientID: name + ":" + InterfaceName,
			Addresses: []rspec.Address{{
				Address: NodeAddress(i),
				Netmask: Netmask,
				Type:    rspec.AddressTypeIPv4,
			}},
		}},
		Blockstores: []rspec.Blockstore{{
			Name:       name + "-bs",
			MountPoint: MountPoint,
			Class:      "local",
			Size:       fmt.Sprintf("%dGB", params.TempFileSystemSize),
			Placement:  "any",
		}},
	}
}

func addExecute(node *rspec.Node, command string) {
	if node.Services == nil {
		node.Services = &rspec.Services{}
	}
	node.Services.Execute = append(node.Services.Execute, rspec.Execute{
		Shell:   "bash",
		Command: command,
	})
}
