package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/aks-labs/website/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display the version, commit hash, and build date of sitectl",
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("sitectl\n")
	fmt.Printf("  Version:    %s\n", version.Version)
	fmt.Printf("  Commit:     %s\n", version.GitCommit)
	fmt.Printf("  Built:      %s\n", version.BuildTime)
	fmt.Printf("  Go version: %s\n", runtime.Version())
	fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
