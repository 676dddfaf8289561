package rspec

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"gopkg.in/yaml.v2"
)

// NewLAN returns a LAN segment with the given bandwidth cap in kbps.
func NewLAN(clientID string, bandwidth int64) Link {
	return Link{
		ClientID:  clientID,
		LinkType:  LinkType{Name: LinkTypeLAN},
		Bandwidth: bandwidth,
	}
}

// AddInterface joins iface to the segment.
func (l *Link) AddInterface(iface Interface) {
	l.InterfaceRefs = append(l.InterfaceRefs, InterfaceRef{ClientID: iface.ClientID})
}

// properties expands the bandwidth cap into one property per ordered interface pair.
func (l Link) properties() []Property {
	if l.Bandwidth <= 0 {
		return nil
	}
	var props []Property
	for _, src := range l.InterfaceRefs {
		for _, dst := range l.InterfaceRefs {
			if src.ClientID == dst.ClientID {
				continue
			}
			props = append(props, Property{
				SourceID: src.ClientID,
				DestID:   dst.ClientID,
				Capacity: l.Bandwidth,
			})
		}
	}
	return props
}

// Marshal serializes the request into the portal's XML wire format.
func Marshal(r *Request) ([]byte, error) {
	out := *r
	out.Links = make([]Link, len(r.Links))
	for i, l := range r.Links {
		l.Properties = l.properties()
		out.Links[i] = l
	}

	body, err := xml.MarshalIndent(&out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// MarshalYAML renders a human-readable summary of the request.
func MarshalYAML(r *Request) ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request summary: %w", err)
	}
	return data, nil
}
