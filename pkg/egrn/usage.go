package egrn

import "strings"

// isUsageError recognises the argument and flag errors produced by cobra,
// which are plain errors without a sentinel to match.
func isUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{
		"missing required argument",
		"accepts ",
		"requires at least ",
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"invalid argument",
		"flag needs an argument",
		"required flag",
	} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
