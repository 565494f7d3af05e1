// Package main provides the command-line interface for one-off match analyses.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/value-edge/internal/analysis"
	"github.com/yourusername/value-edge/internal/config"
	"github.com/yourusername/value-edge/internal/logger"
	"github.com/yourusername/value-edge/internal/models"
	"github.com/yourusername/value-edge/internal/narrative"
	"github.com/yourusername/value-edge/internal/odds"
)

var (
	configFile string

	team1   string
	team2   string
	odds1   string
	odds2   string
	drawStr string

	form1   string
	form2   string
	record1 string
	record2 string
	h2h     string
	home    string
	extra   string

	outputFormat string
)

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "config/config.yaml", "Path to configuration file")

	rootCmd.Flags().StringVar(&team1, "team1", "", "First team name (required)")
	rootCmd.Flags().StringVar(&team2, "team2", "", "Second team name (required)")
	rootCmd.Flags().StringVar(&odds1, "odds1", "", "Odds for team1 winning: decimal, fractional or American (required)")
	rootCmd.Flags().StringVar(&odds2, "odds2", "", "Odds for team2 winning (required)")
	rootCmd.Flags().StringVar(&drawStr, "draw", "", "Odds for a draw; omit for two-outcome markets")

	rootCmd.Flags().StringVar(&form1, "form1", "", "Recent form for team1, e.g. WWLDW")
	rootCmd.Flags().StringVar(&form2, "form2", "", "Recent form for team2")
	rootCmd.Flags().StringVar(&record1, "record1", "", "Season record for team1, e.g. 15W-5L-3D")
	rootCmd.Flags().StringVar(&record2, "record2", "", "Season record for team2")
	rootCmd.Flags().StringVar(&h2h, "h2h", "", "Head-to-head tally, e.g. 3-2-1 (team1 wins, team2 wins, draws)")
	rootCmd.Flags().StringVar(&home, "home", "", "Name of the home team")
	rootCmd.Flags().StringVar(&extra, "context", "", "Extra context passed to the narrative, e.g. injuries")

	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "pretty", "Output format: pretty or json")

	rootCmd.MarkFlagRequired("team1")
	rootCmd.MarkFlagRequired("team2")
	rootCmd.MarkFlagRequired("odds1")
	rootCmd.MarkFlagRequired("odds2")
}

var rootCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a match for betting value",
	Long: `Scores both teams from their recent form, season record and head-to-head
history, compares the estimated probabilities against the bookmaker's
implied probabilities and recommends the bet with positive expected
value, if any clears the configured thresholds.`,
	RunE: runAnalyze,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLog := logger.NewLogger(cfg.App.LogLevel)

	input, err := buildInput()
	if err != nil {
		return err
	}

	generator := buildGenerator(cfg, appLog)

	analyzer := analysis.NewAnalyzer(
		cfg.Analysis.StrengthWeights,
		analysis.Thresholds{
			MinExpectedValue: cfg.Analysis.MinExpectedValue,
			MinConfidence:    cfg.Analysis.MinConfidence,
		},
		cfg.Analysis.DrawBand,
		generator,
		appLog,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := analyzer.AnalyzeMatch(ctx, input)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printPretty(result)
	return nil
}

func buildInput() (models.MatchInput, error) {
	var input models.MatchInput

	team1Odds, err := odds.ParseQuoted(odds1)
	if err != nil {
		return input, fmt.Errorf("--odds1: %w", err)
	}
	team2Odds, err := odds.ParseQuoted(odds2)
	if err != nil {
		return input, fmt.Errorf("--odds2: %w", err)
	}

	quote := models.OddsQuote{Team1: team1Odds, Team2: team2Odds}
	if drawStr != "" {
		drawOdds, err := odds.ParseQuoted(drawStr)
		if err != nil {
			return input, fmt.Errorf("--draw: %w", err)
		}
		quote.Draw = &drawOdds
	}

	return models.MatchInput{
		Team1:             team1,
		Team2:             team2,
		Odds:              quote,
		Team1Signal:       models.TeamSignal{RecentForm: form1, Record: record1},
		Team2Signal:       models.TeamSignal{RecentForm: form2, Record: record2},
		HeadToHead:        h2h,
		HomeTeam:          home,
		AdditionalContext: extra,
	}, nil
}

// buildGenerator wires the reasoning service client when one is configured.
func buildGenerator(cfg *config.Config, appLog *logrus.Logger) narrative.Generator {
	if !cfg.NarrativeEnabled() {
		return narrative.Noop{}
	}
	client := narrative.NewClient(&cfg.Narrative, appLog)
	return narrative.NewCachedGenerator(client,
		time.Duration(cfg.Narrative.CacheTTLSeconds)*time.Second,
		cfg.Narrative.CacheMaxSize,
		appLog,
	)
}

func printPretty(result *models.MatchAnalysis) {
	fmt.Printf("\n%s vs %s\n", result.Input.Team1, result.Input.Team2)
	fmt.Println("────────────────────────────────────────")

	fmt.Printf("Team strength:   %s %.3f | %s %.3f\n",
		result.Input.Team1, result.Team1Strength,
		result.Input.Team2, result.Team2Strength)
	fmt.Printf("Overround:       %.2f%%\n", result.Overround*100)
	if result.MarketFallback {
		fmt.Println("Note:            no team evidence supplied; using market-implied probabilities")
	}

	fmt.Println("\nOutcomes:")
	for _, e := range result.Estimates {
		fmt.Printf("  %-10s odds %6.2f  implied %5.1f%%  estimated %5.1f%%  EV %+6.1f%%\n",
			string(e.Outcome), e.Odds,
			e.ImpliedProbability*100, e.EstimatedProbability*100, e.ExpectedValue*100)
	}

	fmt.Printf("\nRecommendation:  %s\n", result.Recommendation)
	fmt.Printf("Confidence:      %.1f%%\n", result.Confidence*100)
	fmt.Printf("Expected value:  %+.1f%%\n", result.ExpectedValue*100)

	if result.Analysis != "" {
		fmt.Printf("\nAnalysis:\n%s\n", result.Analysis)
	}
	fmt.Println()
}
