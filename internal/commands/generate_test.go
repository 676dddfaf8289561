package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k8s-profile-api/internal/config"
	"k8s-profile-api/internal/store"
)

func runGenerate(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := Generate()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate_Defaults(t *testing.T) {
	out, err := runGenerate(t)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Equal(t, 1, strings.Count(out, "<node "))
	assert.Contains(t, out, "primary 10.10.1.1 1 True Flannel iptables")
}

func TestGenerate_Flags(t *testing.T) {
	out, err := runGenerate(t, "--node-count", "3", "--cni", "Cilium", "--kubeproxy", "ebpf")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "<node "))
	assert.Contains(t, out, "primary 10.10.1.1 3 True Cilium ebpf")
	assert.Contains(t, out, "secondary 10.10.1.2 True Cilium ebpf")
	assert.Contains(t, out, "secondary 10.10.1.3 True Cilium ebpf")
}

func TestGenerate_ConstraintViolation(t *testing.T) {
	out, err := runGenerate(t, "--node-count", "2", "--cni", "Flannel", "--kubeproxy", "ebpf")
	require.Error(t, err)
	assert.NotContains(t, out, "<rspec")

	var perr *config.ParameterError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, []string{"kubeproxy", "cni"}, perr.Fields)
}

func TestGenerate_IllegalCNI(t *testing.T) {
	_, err := runGenerate(t, "--cni", "Weave")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid CNI")
}

func TestGenerate_Environment(t *testing.T) {
	t.Setenv("PROFILE_NODE_COUNT", "2")
	t.Setenv("PROFILE_START_KUBERNETES", "false")
	t.Setenv("PROFILE_CNI", "Calico")

	out, err := runGenerate(t)
	require.NoError(t, err)
	assert.Contains(t, out, "primary 10.10.1.1 2 False Calico iptables")
}

func TestGenerate_FlagOverridesEnvironment(t *testing.T) {
	t.Setenv("PROFILE_CNI", "Calico")

	out, err := runGenerate(t, "--cni", "Cilium")
	require.NoError(t, err)
	assert.Contains(t, out, "True Cilium iptables")
}

func TestGenerate_ParamsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodeCount: 4\nnodeType: d430\ncni: Calico\nkubeproxy: ebpf\n"), 0o600))

	out, err := runGenerate(t, "--params", path, "--node-count", "2")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "<node "))
	assert.Contains(t, out, `<hardware_type name="d430">`)
	assert.Contains(t, out, "primary 10.10.1.1 2 True Calico ebpf")
}

func TestGenerate_YAMLOutput(t *testing.T) {
	out, err := runGenerate(t, "-o", "yaml", "--node-count", "2", "--temp-fs-size", "20")
	require.NoError(t, err)

	assert.Contains(t, out, "name: node2")
	assert.Contains(t, out, "size: 20GB")
}

func TestGenerate_UnknownOutput(t *testing.T) {
	_, err := runGenerate(t, "-o", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestGenerate_OutFileAndStore(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "profile.xml")
	storeDir := filepath.Join(dir, "store")

	out, err := runGenerate(t, "--node-count", "2", "--out", outPath, "--store", storeDir)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "<node "))

	s, err := store.New(storeDir)
	require.NoError(t, err)
	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 1)

	_, stored, err := s.Get(records[0].ID)
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}
