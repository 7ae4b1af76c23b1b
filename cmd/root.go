package cmd

import (
	"fmt"

	"github.com/abhisek/gradewise/internal/corpus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gradewise",
	Short: "AI feedback generator for student answers",
	Long:  "Gradewise scores free-text student answers against reference answers with embeddings, then generates personalized feedback, rewards, and educator alerts.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("corpus", "", "Path to a corpus JSON file (defaults to the built-in reference answers)")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(corpusCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveCorpus returns the corpus from the --corpus flag, or the
// built-in reference answers when the flag is unset.
func resolveCorpus(cmd *cobra.Command) (*corpus.Corpus, error) {
	path, _ := cmd.Flags().GetString("corpus")
	if path == "" {
		return corpus.Builtin(), nil
	}
	c, err := corpus.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return c, nil
}
