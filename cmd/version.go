package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd returns the caller's installed gochip8 version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Retrieve the currently installed gochip8 version",
	Long:  "Run `gochip8 version` to get your current gochip8 version",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Println(currentReleaseVersion)
}
