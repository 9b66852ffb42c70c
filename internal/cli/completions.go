package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/egrn/internal/logging"
	"github.com/vvka-141/egrn/pkg/egrn"
)

// completeCollisionPolicies provides shell completion for the --collision flag.
func completeCollisionPolicies(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, p := range egrn.CollisionPolicies {
		if strings.HasPrefix(string(p), toComplete) {
			matches = append(matches, string(p))
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeLogFormats provides shell completion for the --log-format flag.
func completeLogFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, f := range logging.Formats {
		if strings.HasPrefix(f, toComplete) {
			matches = append(matches, f)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories provides shell completion for directory arguments.
// maxArgs is the number of directory positionals the command takes.
func completeDirectories(maxArgs int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) >= maxArgs {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		// Let the shell handle directory completion
		return nil, cobra.ShellCompDirectiveFilterDirs
	}
}

// completeRenameFiles restricts file completion to archives and XML documents.
func completeRenameFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"zip", "xml"}, cobra.ShellCompDirectiveFilterFileExt
}
