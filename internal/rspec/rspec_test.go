package rspec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() *Request {
	req := NewRequest()
	lan := NewLAN("lan0", 1000)
	for _, name := range []string{"node1", "node2"} {
		iface := Interface{
			ClientID:  name + ":if1",
			Addresses: []Address{{Address: "10.0.0.1", Netmask: "255.255.255.0", Type: AddressTypeIPv4}},
		}
		lan.AddInterface(iface)
		req.Nodes = append(req.Nodes, Node{
			ClientID:     name,
			Exclusive:    true,
			SliverType:   SliverType{Name: SliverTypeRawPC, DiskImage: &DiskImage{Name: "urn:image"}},
			HardwareType: HardwareType{Name: "r320"},
			Interfaces:   []Interface{iface},
			Services:     &Services{Execute: []Execute{{Shell: "bash", Command: "echo a > /tmp/log 2>&1 &"}}},
			Blockstores:  []Blockstore{{Name: name + "-bs", MountPoint: "/mydata", Class: "local", Size: "0GB", Placement: "any"}},
		})
	}
	req.Links = append(req.Links, lan)
	return req
}

func TestNewRequest(t *testing.T) {
	req := NewRequest()

	assert.Equal(t, "request", req.Type)
	assert.Equal(t, NamespaceRSpec, req.Xmlns)
	assert.Nil(t, req.Primary())
}

func TestPrimary(t *testing.T) {
	req := testRequest()
	require.NotNil(t, req.Primary())
	assert.Equal(t, "node1", req.Primary().ClientID)
}

func TestLinkProperties(t *testing.T) {
	lan := NewLAN("lan0", 500)
	lan.AddInterface(Interface{ClientID: "a"})
	lan.AddInterface(Interface{ClientID: "b"})
	lan.AddInterface(Interface{ClientID: "c"})

	props := lan.properties()
	assert.Len(t, props, 6)
	for _, p := range props {
		assert.NotEqual(t, p.SourceID, p.DestID)
		assert.Equal(t, int64(500), p.Capacity)
	}
}

func TestLinkProperties_NoBandwidth(t *testing.T) {
	lan := NewLAN("lan0", 0)
	lan.AddInterface(Interface{ClientID: "a"})
	lan.AddInterface(Interface{ClientID: "b"})

	assert.Empty(t, lan.properties())
}

func TestMarshal(t *testing.T) {
	req := testRequest()

	data, err := Marshal(req)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<rspec xmlns="http://www.geni.net/resources/rspec/3"`)
	assert.Contains(t, out, `xmlns:emulab="http://www.protogeni.net/resources/rspec/ext/emulab/1"`)
	assert.Contains(t, out, `type="request"`)
	assert.Contains(t, out, `<node client_id="node1" exclusive="true">`)
	assert.Contains(t, out, `<sliver_type name="raw-pc">`)
	assert.Contains(t, out, `<disk_image name="urn:image"></disk_image>`)
	assert.Contains(t, out, `<hardware_type name="r320"></hardware_type>`)
	assert.Contains(t, out, `<interface client_id="node2:if1">`)
	assert.Contains(t, out, `<ip address="10.0.0.1" netmask="255.255.255.0" type="ipv4"></ip>`)
	assert.Contains(t, out, `<emulab:blockstore name="node1-bs" mountpoint="/mydata" class="local" size="0GB" placement="any"></emulab:blockstore>`)
	assert.Contains(t, out, `<link client_id="lan0">`)
	assert.Contains(t, out, `<link_type name="lan"></link_type>`)
	assert.Contains(t, out, `<interface_ref client_id="node1:if1"></interface_ref>`)
	assert.Contains(t, out, `<property source_id="node1:if1" dest_id="node2:if1" capacity="1000"></property>`)
	assert.Contains(t, out, `<property source_id="node2:if1" dest_id="node1:if1" capacity="1000"></property>`)

	// Shell redirections are escaped inside the attribute.
	assert.Contains(t, out, `command="echo a &gt; /tmp/log 2&gt;&amp;1 &amp;"`)

	// Marshal does not write computed properties back into the caller's document.
	assert.Empty(t, req.Links[0].Properties)
}

func TestMarshalYAML(t *testing.T) {
	data, err := MarshalYAML(testRequest())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "type: request")
	assert.Contains(t, out, "- name: node1")
	assert.Contains(t, out, "bandwidth: 1000")
	assert.Contains(t, out, "mountpoint: /mydata")
	assert.NotContains(t, out, "xmlns")
}
