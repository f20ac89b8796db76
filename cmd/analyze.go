package main

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/govlens/govlens/internal/analyze"
)

var (
	analyzeURL      string
	analyzeFile     string
	analyzePolicy   string
	analyzeLanguage string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a single proposal from a URL or document",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.OpenAI.Key == "" {
			return eris.New("openai.key is not configured")
		}
		if analyzeURL == "" && analyzeFile == "" {
			return eris.New("either --url or --file is required")
		}

		analyzer, err := newAnalyzer(cfg)
		if err != nil {
			return err
		}

		report, err := analyzer.Run(cmd.Context(), analyze.Request{
			URL:      analyzeURL,
			FilePath: analyzeFile,
			Policy:   analyzePolicy,
			Language: analyzeLanguage,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeURL, "url", "", "proposal URL")
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "path to a proposal document (PDF)")
	analyzeCmd.Flags().StringVar(&analyzePolicy, "policy", "", "evaluation policy text (default: built-in rubric)")
	analyzeCmd.Flags().StringVar(&analyzeLanguage, "language", "ja", `analysis language ("ja" or "en")`)
	rootCmd.AddCommand(analyzeCmd)
}
