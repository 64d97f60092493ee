package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jokarl/osgamelist/internal/config"
	"github.com/jokarl/osgamelist/internal/paths"
)

var (
	pathsFormatFlag  string
	pathsEntriesFlag bool
)

// webRootKey overrides the website directory in the general section
const webRootKey = "web-root"

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the database directory layout",
	Long: `Show where the database, generator code and generated website live,
relative to --root. The website directory can be changed with the
"web-root" key of the general config section.`,
	Args: cobra.NoArgs,
	RunE: runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)

	pathsCmd.Flags().StringVar(&pathsFormatFlag, "format", "", "Output format: text, json, yaml (default from config)")
	pathsCmd.Flags().BoolVar(&pathsEntriesFlag, "entries", false, "List entry files instead of the layout")
}

func runPaths(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	webDir := paths.DefaultWebDir
	if v, err := e.cfg.GetGeneral(webRootKey); err == nil {
		webDir = v
	} else if !errors.Is(err, config.ErrMissingConfigKey) {
		return err
	}

	layout, err := paths.NewLayoutWithWebDir(rootFlag, webDir)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	if pathsEntriesFlag {
		files, err := layout.EntryFiles()
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}
		for _, f := range files {
			fmt.Fprintln(w, f)
		}
		e.logger.Debug("listed entries", "count", len(files))
		return nil
	}

	renderer, err := e.renderer(w, pathsFormatFlag, "never")
	if err != nil {
		return err
	}
	return renderer.RenderLocations(w, layout.Locations())
}
