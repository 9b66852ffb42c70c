package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCompleteCollisionPolicies(t *testing.T) {
	cmd := &cobra.Command{}

	t.Run("returns all policies for empty input", func(t *testing.T) {
		completions, directive := completeCollisionPolicies(cmd, nil, "")
		assert.Equal(t, []string{"suffix", "overwrite", "error"}, completions)
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	})

	t.Run("filters by prefix", func(t *testing.T) {
		completions, _ := completeCollisionPolicies(cmd, nil, "ov")
		assert.Equal(t, []string{"overwrite"}, completions)
	})

	t.Run("returns empty for non-matching prefix", func(t *testing.T) {
		completions, _ := completeCollisionPolicies(cmd, nil, "xyz")
		assert.Empty(t, completions)
	})
}

func TestCompleteLogFormats(t *testing.T) {
	completions, _ := completeLogFormats(&cobra.Command{}, nil, "s")
	assert.Equal(t, []string{"slog"}, completions)
}

func TestCompleteDirectories(t *testing.T) {
	complete := completeDirectories(2)

	_, directive := complete(&cobra.Command{}, []string{"in"}, "")
	assert.Equal(t, cobra.ShellCompDirectiveFilterDirs, directive)

	_, directive = complete(&cobra.Command{}, []string{"in", "out"}, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}
