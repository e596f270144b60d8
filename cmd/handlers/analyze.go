package handlers

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tubelens/internal/analyze"
	"tubelens/internal/categorize"
	"tubelens/internal/config"
	"tubelens/internal/core"
	"tubelens/internal/logger"
)

// analyzeInput is the JSON document accepted by the analyze command.
// It matches the body of POST /api/analyze so that captured requests
// can be replayed offline.
type analyzeInput struct {
	Videos      []core.VideoRecord `json:"videos"`
	ChannelName string             `json:"channel_name,omitempty"`
	ChannelID   string             `json:"channel_id,omitempty"`
}

// NewAnalyzeCmd creates the analyze command for offline keyword analysis.
func NewAnalyzeCmd() *cobra.Command {
	var (
		topN       int
		jsonOutput bool
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [input-file]",
		Short: "Analyze video metadata from a JSON file",
		Long: `Run keyword analysis over a JSON file of video metadata.

The input file holds a JSON object with a "videos" array, where each
video has "title", "description" and "tags" fields. The same document
shape is accepted by POST /api/analyze.

Examples:
  # Analyze a batch of videos and print a report
  tubelens analyze videos.json

  # Emit the raw analysis result as JSON
  tubelens analyze videos.json --json

  # Keep only the 10 most frequent keywords
  tubelens analyze videos.json --top 10

  # Persist the result to the engagement store (requires channel_id in the input)
  tubelens analyze videos.json --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0], topN, jsonOutput, save)
		},
	}

	cmd.Flags().IntVar(&topN, "top", 0, "number of top keywords to keep (default from config: 15)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the raw analysis result as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "persist the result to the engagement store")

	return cmd
}

func runAnalyze(inputPath string, topN int, jsonOutput, save bool) error {
	log := logger.Get()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var input analyzeInput
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("failed to parse input file: %w", err)
	}
	if input.Videos == nil {
		return fmt.Errorf("input file is missing the \"videos\" field")
	}

	if topN == 0 {
		topN = cfg.Analysis.TopKeywords
	}

	analyzer := analyze.New(topN)
	result := analyzer.Analyze(input.Videos)

	if save {
		if input.ChannelID == "" {
			return fmt.Errorf("--save requires a channel_id in the input file")
		}
		st, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("failed to open engagement store: %w", err)
		}
		defer st.Close()

		payload, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode analysis result: %w", err)
		}
		if err := st.Save(input.ChannelID, core.EngagementKeywordAnalysis, payload); err != nil {
			return fmt.Errorf("failed to save analysis result: %w", err)
		}
		log.Info().Str("channel_id", input.ChannelID).Msg("Analysis result saved")
	}

	if jsonOutput {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode analysis result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(formatAnalysisReport(input.ChannelName, result))
	return nil
}

// formatAnalysisReport renders a human-readable report of an analysis run.
func formatAnalysisReport(channelName string, result core.AnalysisResult) string {
	var b strings.Builder

	b.WriteString("# Keyword Analysis Report\n\n")
	if channelName != "" {
		b.WriteString(fmt.Sprintf("**Channel:** %s\n", channelName))
	}
	b.WriteString(fmt.Sprintf("**Report ID:** %s\n", uuid.New().String()))
	b.WriteString(fmt.Sprintf("**Videos analyzed:** %d\n\n", result.TotalVideosAnalyzed))

	b.WriteString("## Top Keywords\n\n")
	if len(result.TopKeywords) == 0 {
		b.WriteString("No keywords found.\n")
	}
	for i, kw := range result.TopKeywords {
		b.WriteString(fmt.Sprintf("%d. %s (%d)\n", i+1, kw.Keyword, kw.Frequency))
	}
	b.WriteString("\n")

	if len(result.KeywordCategories) > 0 {
		b.WriteString("## Categories\n\n")
		for _, category := range categorize.Order() {
			keywords, ok := result.KeywordCategories[category]
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("- **%s**: %s\n", category, strings.Join(keywords, ", ")))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Sentiment\n\n")
	b.WriteString(fmt.Sprintf("- Polarity: %.3f\n", result.SentimentAnalysis.Polarity))
	b.WriteString(fmt.Sprintf("- Subjectivity: %.3f\n\n", result.SentimentAnalysis.Subjectivity))

	b.WriteString("## Recommendations\n\n")
	for _, rec := range result.Recommendations {
		b.WriteString(fmt.Sprintf("- %s\n", rec))
	}

	return b.String()
}
