package cli

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const territoryPlanXML = `<extract_cadastral_plan_territory>
  <cadastral_block><cadastral_number>77:01:0001001:123</cadastral_number></cadastral_block>
</extract_cadastral_plan_territory>`

func resetFlags(t *testing.T) {
	t.Helper()
	rootFlags = rootFlagValues{}
	unpackFlags = unpackFlagValues{}
	urlsFlags = urlsFlagValues{}
	for _, env := range []string{"EGRN_COLLISION", "EGRN_URL_PREFIX", "EGRN_LOG_FORMAT"} {
		t.Setenv(env, "")
	}
	t.Setenv("EGRN_NON_INTERACTIVE", "1")
}

// captureOut redirects cmd's stdout into a buffer for the duration of the test.
func captureOut(t *testing.T, cmd *cobra.Command) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	t.Cleanup(func() { cmd.SetOut(nil) })
	return &buf
}

func writeZip(t *testing.T, path string, members map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, body := range members {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func mkdirs(t *testing.T, names ...string) []string {
	t.Helper()
	root := t.TempDir()
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = filepath.Join(root, n)
		require.NoError(t, os.MkdirAll(paths[i], 0o755))
	}
	return paths
}
