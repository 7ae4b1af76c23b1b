package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/gradewise/internal/app"
	"github.com/abhisek/gradewise/internal/embedding"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Grade a sample class session end to end",
	Long:  "Runs four sample student responses through the full pipeline and prints feedback, progress reports, the educator dashboard, and a JSON export.",
	RunE: func(cmd *cobra.Command, args []string) error {
		exportPath, _ := cmd.Flags().GetString("export")

		c, err := resolveCorpus(cmd)
		if err != nil {
			return err
		}

		provider, err := resolveProvider(cmd)
		if err != nil {
			return err
		}

		a := app.New(provider, c, os.Stdout)
		return a.RunDemo(cmd.Context(), exportPath)
	},
}

// resolveProvider builds the embedding provider from flags and env. With
// --offline, or when no API backend is configured, it falls back to the
// deterministic lexical embedder and says so.
func resolveProvider(cmd *cobra.Command) (embedding.Provider, error) {
	offline, _ := cmd.Flags().GetBool("offline")
	if offline {
		return embedding.NewLexicalEmbedder(), nil
	}

	provider, err := embedding.NewProviderFromEnv(cmd.Context(), embedding.NewRequestLog())
	if err != nil {
		fmt.Fprintf(os.Stderr, "note: no embedding backend configured (%v); using the offline lexical embedder\n", err)
		return embedding.NewLexicalEmbedder(), nil
	}
	return provider, nil
}

func init() {
	demoCmd.Flags().String("export", "", "Path for the JSON export (default: timestamped file in the working directory)")
	demoCmd.Flags().Bool("offline", false, "Use the offline lexical embedder instead of an embedding API")
}
