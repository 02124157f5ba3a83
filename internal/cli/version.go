package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gradebook-cli/gradebook/internal/style"
)

// Set with -ldflags at release time.
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	BuiltBy   = "unknown"
	GoVersion = runtime.Version()
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Print the gradebook version. With --verbose the commit, build date and platform follow.`,
	Example: `
  gradebook version
  gradebook version --verbose
  gradebook version --output yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		showVersion(cmd)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// VersionInfo represents version information
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	BuiltBy   string `json:"built_by" yaml:"built_by"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

func showVersion(cmd *cobra.Command) {
	versionInfo := VersionInfo{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		BuiltBy:   BuiltBy,
		GoVersion: GoVersion,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	switch viper.GetString("output") {
	case "json":
		style.PrintJSON(cmd.OutOrStdout(), versionInfo)
	case "yaml":
		style.PrintYAML(cmd.OutOrStdout(), versionInfo)
	default:
		printText(cmd.OutOrStdout(), versionInfo, viper.GetBool("verbose"))
	}
}

// printText prints "gradebook <version>", followed by the build details
// when detailed is set.
func printText(w io.Writer, info VersionInfo, detailed bool) {
	fmt.Fprintf(w, "gradebook %s\n", info.Version)
	if !detailed {
		return
	}

	for _, field := range [][2]string{
		{"commit", info.Commit},
		{"built", info.Date},
		{"built by", info.BuiltBy},
		{"go", info.GoVersion},
		{"platform", info.Platform},
	} {
		fmt.Fprintf(w, "  %-9s %s\n", field[0]+":", field[1])
	}
}
