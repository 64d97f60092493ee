package cli

import (
	"github.com/spf13/cobra"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// Global flags
var (
	rootFlag     string
	configFlag   string
	logLevelFlag string
	setFlags     []string
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "osgamelist",
	Short: "Controlled vocabularies of the open source game list",
	Long: `osgamelist holds the controlled vocabularies of the open source game
database (licenses, programming languages, platforms, keywords and more),
resolves their reference URLs and checks entry values against them.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", ".", "Root directory of the game database")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (default: <root>/local-config.hcl)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: trace, debug, info, warn, error, off")
	rootCmd.PersistentFlags().StringArrayVar(&setFlags, "set", nil, "Override a config value: section.key=value (repeatable)")
}
