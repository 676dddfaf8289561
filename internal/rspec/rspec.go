// Package rspec defines the request document consumed by the provisioning portal.
//
// The types map one-to-one onto the GENI RSpec v3 request schema with the
// Emulab extensions the portal understands. Field names and nesting follow the
// portal's schema and must not change.
package rspec

import "encoding/xml"

const (
	NamespaceRSpec  = "http://www.geni.net/resources/rspec/3"
	NamespaceEmulab = "http://www.protogeni.net/resources/rspec/ext/emulab/1"
	NamespaceClient = "http://www.protogeni.net/resources/rspec/ext/client/1"
	NamespaceXSI    = "http://www.w3.org/2001/XMLSchema-instance"
	SchemaLocation  = NamespaceRSpec + " " + NamespaceRSpec + "/request.xsd"

	SliverTypeRawPC = "raw-pc"
	LinkTypeLAN     = "lan"
	AddressTypeIPv4 = "ipv4"
)

// Request is the top-level request document.
type Request struct {
	XMLName        xml.Name `xml:"rspec" yaml:"-"`
	Xmlns          string   `xml:"xmlns,attr" yaml:"-"`
	XmlnsEmulab    string   `xml:"xmlns:emulab,attr" yaml:"-"`
	XmlnsClient    string   `xml:"xmlns:client,attr" yaml:"-"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr" yaml:"-"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr" yaml:"-"`
	Type           string   `xml:"type,attr" yaml:"type"`
	Nodes          []Node   `xml:"node" yaml:"nodes"`
	Links          []Link   `xml:"link" yaml:"links"`
}

// NewRequest returns an empty request document with the portal namespaces set.
func NewRequest() *Request {
	return &Request{
		Xmlns:          NamespaceRSpec,
		XmlnsEmulab:    NamespaceEmulab,
		XmlnsClient:    NamespaceClient,
		XmlnsXSI:       NamespaceXSI,
		SchemaLocation: SchemaLocation,
		Type:           "request",
	}
}

// Primary returns the control node, or nil if the request has no nodes.
func (r *Request) Primary() *Node {
	if len(r.Nodes) == 0 {
		return nil
	}
	return &r.Nodes[0]
}

// Node is a single bare-metal machine.
type Node struct {
	ClientID     string       `xml:"client_id,attr" yaml:"name"`
	Exclusive    bool         `xml:"exclusive,attr" yaml:"-"`
	SliverType   SliverType   `xml:"sliver_type" yaml:"sliverType"`
	HardwareType HardwareType `xml:"hardware_type" yaml:"hardwareType"`
	Interfaces   []Interface  `xml:"interface" yaml:"interfaces"`
	Services     *Services    `xml:"services,omitempty" yaml:"services,omitempty"`
	Blockstores  []Blockstore `xml:"emulab:blockstore" yaml:"blockstores"`
}

type SliverType struct {
	Name      string     `xml:"name,attr" yaml:"name"`
	DiskImage *DiskImage `xml:"disk_image,omitempty" yaml:"diskImage,omitempty"`
}

type DiskImage struct {
	Name string `xml:"name,attr" yaml:"name"`
}

type HardwareType struct {
	Name string `xml:"name,attr" yaml:"name"`
}

// Interface is a node network interface.
type Interface struct {
	ClientID  string    `xml:"client_id,attr" yaml:"name"`
	Addresses []Address `xml:"ip" yaml:"addresses"`
}

// Address is a statically assigned interface address.
type Address struct {
	Address string `xml:"address,attr" yaml:"address"`
	Netmask string `xml:"netmask,attr" yaml:"netmask"`
	Type    string `xml:"type,attr" yaml:"type"`
}

type Services struct {
	Execute []Execute `xml:"execute" yaml:"execute"`
}

// Execute is a boot-time command run by the portal on the node.
type Execute struct {
	Shell   string `xml:"shell,attr" yaml:"shell"`
	Command string `xml:"command,attr" yaml:"command"`
}

// Blockstore is an ephemeral volume destroyed with the experiment.
type Blockstore struct {
	Name       string `xml:"name,attr" yaml:"name"`
	MountPoint string `xml:"mountpoint,attr" yaml:"mountpoint"`
	Class      string `xml:"class,attr" yaml:"class"`
	Size       string `xml:"size,attr" yaml:"size"`
	Placement  string `xml:"placement,attr" yaml:"placement"`
}

// Link is a network segment joining node interfaces.
type Link struct {
	ClientID      string         `xml:"client_id,attr" yaml:"name"`
	LinkType      LinkType       `xml:"link_type" yaml:"-"`
	InterfaceRefs []InterfaceRef `xml:"interface_ref" yaml:"interfaces"`
	Properties    []Property     `xml:"property" yaml:"-"`
	Bandwidth     int64          `xml:"-" yaml:"bandwidth"`
}

type LinkType struct {
	Name string `xml:"name,attr"`
}

type InterfaceRef struct {
	ClientID string `xml:"client_id,attr" yaml:"name"`
}

// Property carries per-direction link characteristics. Capacity is in kbps.
type Property struct {
	SourceID string `xml:"source_id,attr"`
	DestID   string `xml:"dest_id,attr"`
	Capacity int64  `xml:"capacity,attr"`
}
