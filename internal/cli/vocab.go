package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jokarl/osgamelist/internal/output"
)

var (
	vocabFormatFlag string
	vocabColorFlag  string
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Inspect controlled vocabularies",
	Long:  `Commands for listing controlled vocabularies and resolving their reference URLs.`,
}

var vocabListCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List categories or the values of one category",
	Long: `Without arguments, list every category with its number of values and
reference URLs. With a category, list its values in canonical order.

Examples:
  osgamelist vocab list
  osgamelist vocab list platform`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVocabList,
}

var vocabResolveCmd = &cobra.Command{
	Use:   "resolve <category> <value>",
	Short: "Resolve the reference URL of a value",
	Long: `Resolve the reference URL of a value. Values outside the category are
rejected; legal values without a reference page print nothing.

Example:
  osgamelist vocab resolve license GPL-3.0`,
	Args: cobra.ExactArgs(2),
	RunE: runVocabResolve,
}

var vocabURLsCmd = &cobra.Command{
	Use:   "urls <category>",
	Short: "Show the derived value to URL map of a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runVocabURLs,
}

func init() {
	rootCmd.AddCommand(vocabCmd)
	vocabCmd.AddCommand(vocabListCmd)
	vocabCmd.AddCommand(vocabResolveCmd)
	vocabCmd.AddCommand(vocabURLsCmd)

	vocabCmd.PersistentFlags().StringVar(&vocabFormatFlag, "format", "", "Output format: text, json, yaml (default from config)")
	vocabCmd.PersistentFlags().StringVar(&vocabColorFlag, "color", "", "Color mode: auto, always, never (default from config)")
}

func runVocabList(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	renderer, err := e.renderer(w, vocabFormatFlag, vocabColorFlag)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return renderer.RenderCategories(w, output.NewCategorySummaries(e.registry.Vocabularies()))
	}

	v, err := e.registry.Get(args[0])
	if err != nil {
		return categoryError(err, e.registry.Categories())
	}
	return renderer.RenderVocabulary(w, output.NewVocabularyView(v, false))
}

func runVocabResolve(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	v, err := e.registry.Get(args[0])
	if err != nil {
		return categoryError(err, e.registry.Categories())
	}
	url, err := v.Resolve(args[1])
	if err != nil {
		return err
	}
	if url == "" {
		e.logger.Info("value has no reference URL", "category", v.Category(), "value", args[1])
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}

func runVocabURLs(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	v, err := e.registry.Get(args[0])
	if err != nil {
		return categoryError(err, e.registry.Categories())
	}
	renderer, err := e.renderer(w, vocabFormatFlag, vocabColorFlag)
	if err != nil {
		return err
	}
	return renderer.RenderVocabulary(w, output.NewVocabularyView(v, true))
}

// categoryError appends the available categories to an unknown category error
func categoryError(err error, categories []string) error {
	return fmt.Errorf("%w\n\nAvailable categories:\n  %s", err, strings.Join(categories, "\n  "))
}
