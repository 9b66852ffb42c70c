package archive

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScratch_Resolve(t *testing.T) {
	area, err := newScratch(t.TempDir(), uuid.New())
	require.NoError(t, err)
	defer area.Remove()

	tests := []struct {
		name    string
		wantErr bool
	}{
		{"a.xml", false},
		{"dir/sub/a.pdf", false},
		{`win\style.xml`, false},
		{"./a.xml", false},
		{"../a.xml", true},
		{"dir/../../a.xml", true},
		{"/etc/passwd", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := area.resolve(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			rel, err := filepath.Rel(area.root, p)
			require.NoError(t, err)
			assert.NotContains(t, rel, "..")
		})
	}
}

func TestScratch_RemoveDeletesTree(t *testing.T) {
	root := t.TempDir()
	area, err := newScratch(root, uuid.New())
	require.NoError(t, err)
	assert.DirExists(t, area.root)

	require.NoError(t, area.Remove())
	assert.NoDirExists(t, area.root)
}
