package cmd

import (
	"srclist/pkg/version"

	"github.com/spf13/cobra"
)

// addVersion wires --version onto the root command. A flag is used rather
// than a subcommand so that "version" remains usable as a root directory.
func addVersion(rootCmd *cobra.Command) {
	v := version.Get()
	rootCmd.Version = v.Version
	rootCmd.SetVersionTemplate(v.String() + "\n")
}
