package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"k8s-profile-api/internal/builder"
	"k8s-profile-api/internal/config"
	"k8s-profile-api/internal/logger"
	"k8s-profile-api/internal/rspec"
	"k8s-profile-api/internal/store"
	"k8s-profile-api/internal/utils"
)

const generateLong = `Generate the request document for an N-node Kubernetes experiment.

Parameters are resolved from, in increasing precedence: portal defaults, the
--params YAML file, PROFILE_* environment variables and command-line flags.`

// Generate returns the generate command.
func Generate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a request document",
		Long:  generateLong,
		Args:  cobra.NoArgs,
	}

	d := config.DefaultParams()
	f := cmd.Flags()
	f.String("params", "", "YAML parameter file")
	f.Int("node-count", d.NodeCount, "Number of nodes in the experiment")
	f.String("node-type", d.NodeType, "Node hardware type")
	f.Bool("start-kubernetes", d.StartKubernetes, "Create the Kubernetes cluster at boot")
	f.String("cni", string(d.CNI), "CNI plugin (Flannel, Calico, Cilium)")
	f.String("kubeproxy", string(d.KubeProxy), "kube-proxy mode (iptables, ipvs, nftables, ebpf)")
	f.Int("temp-fs-size", d.TempFileSystemSize, "Temporary filesystem size in GB (0 = maximum)")
	f.StringP("output", "o", "xml", "Output format (xml, yaml)")
	f.String("out", "", "Write the document to this file instead of stdout")
	f.String("store", "", "Also record the document in this request store directory")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		v := newViper(cmd)

		params, err := resolveParams(v)
		if err != nil {
			return err
		}

		req, err := builder.Build(params)
		if err != nil {
			return err
		}

		var doc []byte
		switch format := v.GetString("output"); format {
		case "xml":
			doc, err = rspec.Marshal(req)
		case "yaml":
			doc, err = rspec.MarshalYAML(req)
		default:
			return fmt.Errorf("unknown output format %q: must be xml or yaml", format)
		}
		if err != nil {
			return err
		}

		if dir := v.GetString("store"); dir != "" {
			s, err := store.New(dir)
			if err != nil {
				return err
			}
			rec, err := s.Save(params, doc)
			if err != nil {
				return err
			}
			logger.Info("Recorded request %s in %s", rec.ID, dir)
		}

		if out := v.GetString("out"); out != "" {
			if err := utils.WriteFile(out, doc); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			logger.Info("Wrote %d-node request to %s", len(req.Nodes), out)
			return nil
		}

		_, err = cmd.OutOrStdout().Write(doc)
		return err
	}

	return cmd
}

// resolveParams layers the parameter file, environment and flags over the defaults.
func resolveParams(v *viper.Viper) (config.Params, error) {
	params := config.DefaultParams()
	if file := v.GetString("params"); file != "" {
		loaded, err := config.Load(file)
		if err != nil {
			return config.Params{}, err
		}
		params = loaded
	}

	if v.IsSet("node-count") {
		params.NodeCount = v.GetInt("node-count")
	}
	if v.IsSet("node-type") {
		params.NodeType = v.GetString("node-type")
	}
	if v.IsSet("start-kubernetes") {
		params.StartKubernetes = v.GetBool("start-kubernetes")
	}
	if v.IsSet("temp-fs-size") {
		params.TempFileSystemSize = v.GetInt("temp-fs-size")
	}
	if v.IsSet("cni") {
		cni, err := config.ParseCNI(v.GetString("cni"))
		if err != nil {
			return config.Params{}, err
		}
		params.CNI = cni
	}
	if v.IsSet("kubeproxy") {
		mode, err := config.ParseKubeProxyMode(v.GetString("kubeproxy"))
		if err != nil {
			return config.Params{}, err
		}
		params.KubeProxy = mode
	}

	return params, nil
}
