package config

import (
	"fmt"
	"strings"
)

// ParameterError is a parameter violation attributed to one or more parameter names.
type ParameterError struct {
	Message string
	Fields  []string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameter error [%s]: %s", strings.Join(e.Fields, ", "), e.Message)
}

// Verify checks the cross-field constraints between parameters.
//
// Only the kube-proxy/CNI pairing is checked. Node count and hardware type are
// left to the portal.
func (p Params) Verify() error {
	if p.KubeProxy == KubeProxyEBPF && p.CNI != CNICalico && p.CNI != CNICilium {
		return &ParameterError{
			Message: "KubeProxy in 'ebpf' mode is only supported when CNI is Calico or Cilium.",
			Fields:  []string{"kubeproxy", "cni"},
		}
	}
	return nil
}

// ParseCNI returns the CNI matching s exactly.
func ParseCNI(s string) (CNI, error) {
	for _, c := range LegalCNIs {
		if string(c) == s {
			return c, nil
		}
	}
	return "", &ParameterError{
		Message: fmt.Sprintf("invalid CNI %q: must be one of %v", s, LegalCNIs),
		Fields:  []string{"cni"},
	}
}

// ParseKubeProxyMode returns the kube-proxy mode matching s exactly.
func ParseKubeProxyMode(s string) (KubeProxyMode, error) {
	for _, m := range LegalKubeProxyModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", &ParameterError{
		Message: fmt.Sprintf("invalid kubeproxy mode %q: must be one of %v", s, LegalKubeProxyModes),
		Fields:  []string{"kubeproxy"},
	}
}

// CheckLegalValues rejects enum values outside the portal's legal sets.
// It is applied where values enter from user input, not by Verify.
func (p Params) CheckLegalValues() error {
	if _, err := ParseCNI(string(p.CNI)); err != nil {
		return err
	}
	if _, err := ParseKubeProxyMode(string(p.KubeProxy)); err != nil {
		return err
	}
	return nil
}
