package config

// CNI is the container network interface plugin installed by the bootstrap script.
type CNI string

const (
	CNIFlannel CNI = "Flannel"
	CNICalico  CNI = "Calico"
	CNICilium  CNI = "Cilium"
)

// KubeProxyMode selects how kube-proxy routes service traffic.
type KubeProxyMode string

const (
	KubeProxyIPTables KubeProxyMode = "iptables"
	KubeProxyIPVS     KubeProxyMode = "ipvs"
	KubeProxyNFTables KubeProxyMode = "nftables"
	KubeProxyEBPF     KubeProxyMode = "ebpf"
)

// LegalCNIs lists the CNI plugins the portal offers, in display order.
var LegalCNIs = []CNI{CNIFlannel, CNICalico, CNICilium}

// LegalKubeProxyModes lists the kube-proxy modes the portal offers, in display order.
var LegalKubeProxyModes = []KubeProxyMode{KubeProxyIPTables, KubeProxyIPVS, KubeProxyNFTables, KubeProxyEBPF}

// Params represents the parameter set bound by the portal
type Params struct {
	NodeCount          int           `json:"nodeCount" yaml:"nodeCount"`
	NodeType           string        `json:"nodeType" yaml:"nodeType"`
	StartKubernetes    bool          `json:"startKubernetes" yaml:"startKubernetes"`
	CNI                CNI           `json:"cni" yaml:"cni"`
	KubeProxy          KubeProxyMode `json:"kubeproxy" yaml:"kubeproxy"`
	TempFileSystemSize int           `json:"tempFileSystemSize" yaml:"tempFileSystemSize"`
}

// DefaultParams returns the portal defaults for every parameter.
func DefaultParams() Params {
	return Params{
		NodeCount:          1,
		NodeType:           "r320",
		StartKubernetes:    true,
		CNI:                CNIFlannel,
		KubeProxy:          KubeProxyIPTables,
		TempFileSystemSize: 0,
	}
}

// ParameterType mirrors the portal's parameter widget types.
type ParameterType string

const (
	TypeInteger  ParameterType = "integer"
	TypeNodeType ParameterType = "nodetype"
	TypeBoolean  ParameterType = "boolean"
	TypeString   ParameterType = "string"
)

// Definition describes one user-facing parameter.
type Definition struct {
	Name            string        `json:"name" yaml:"name"`
	Description     string        `json:"description" yaml:"description"`
	Type            ParameterType `json:"type" yaml:"type"`
	Default         interface{}   `json:"default" yaml:"default"`
	LegalValues     []string      `json:"legalValues,omitempty" yaml:"legalValues,omitempty"`
	LongDescription string        `json:"longDescription,omitempty" yaml:"longDescription,omitempty"`
	Advanced        bool          `json:"advanced,omitempty" yaml:"advanced,omitempty"`
}

// Definitions returns the parameter definitions in the order the portal shows them.
func Definitions() []Definition {
	d := DefaultParams()

	cnis := make([]string, 0, len(LegalCNIs))
	for _, c := range LegalCNIs {
		cnis = append(cnis, string(c))
	}
	modes := make([]string, 0, len(LegalKubeProxyModes))
	for _, m := range LegalKubeProxyModes {
		modes = append(modes, string(m))
	}

	return []Definition{
		{
			Name:        "nodeCount",
			Description: "Number of nodes in the experiment.",
			Type:        TypeInteger,
			Default:     d.NodeCount,
		},
		{
			Name:            "nodeType",
			Description:     "Node Hardware Type",
			Type:            TypeNodeType,
			Default:         d.NodeType,
			LongDescription: "A specific hardware type to use for all nodes. This profile has primarily been tested with r320 nodes.",
		},
		{
			Name:            "startKubernetes",
			Description:     "Create Kubernetes cluster",
			Type:            TypeBoolean,
			Default:         d.StartKubernetes,
			LongDescription: "Create a Kubernetes cluster using the parameters. If false, kubeadm init won't be called.",
		},
		{
			Name:            "cni",
			Description:     "CNI Plugin",
			Type:            TypeString,
			Default:         string(d.CNI),
			LegalValues:     cnis,
			LongDescription: "Choose which CNI Plugin will be used.",
		},
		{
			Name:            "kubeproxy",
			Description:     "KubeProxy Mode",
			Type:            TypeString,
			Default:         string(d.KubeProxy),
			LegalValues:     modes,
			LongDescription: "Choose kubeproxy mode. Note: eBPF mode is only supported for Calico and Cilium.",
		},
		{
			Name:        "tempFileSystemSize",
			Description: "Temporary Filesystem Size",
			Type:        TypeInteger,
			Default:     d.TempFileSystemSize,
			Advanced:    true,
			LongDescription: "The size in GB of a temporary file system to mount on each of your nodes. " +
				"Temporary means that they are deleted when your experiment is terminated. " +
				"The images provided by the system have small root partitions, so use this option " +
				"if you expect you will need more space to build your software packages or store " +
				"temporary files. 0 GB indicates maximum size.",
		},
	}
}
