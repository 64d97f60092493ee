package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read local configuration",
	Long: `Commands for reading the local configuration file (local-config.hcl in
the database root unless --config is given).`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <section> <key>",
	Short: "Print a configuration value",
	Long: `Print the value of key in section. Fails if the section or key is not
configured.

Example:
  osgamelist config get general github-token`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigGet,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print all configured sections",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	value, err := e.cfg.Get(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	if path := e.cfg.ConfigPath(); path != "" {
		fmt.Fprintf(w, "# %s\n", path)
	} else {
		fmt.Fprintln(w, "# no config file, using defaults")
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range e.cfg.SectionNames() {
		values, _ := e.cfg.Section(name)
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(tw, "%s.%s\t%s\n", name, k, values[k])
		}
	}
	fmt.Fprintf(tw, "output.format\t%s\n", e.cfg.Output.Format)
	fmt.Fprintf(tw, "output.color\t%s\n", e.cfg.Output.Color)
	fmt.Fprintf(tw, "log.level\t%s\n", e.cfg.Log.Level)
	fmt.Fprintf(tw, "check.fail_on\t%s\n", e.cfg.Check.FailOn)
	return tw.Flush()
}
