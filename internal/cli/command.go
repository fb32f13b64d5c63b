package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/tangocards/internal"
	"codeberg.org/snonux/tangocards/internal/config"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tangocards [word]",
		Short: "Japanese Anki Flashcard Generator",
		Long: `tangocards generates Anki flashcards from Japanese words.

A language model supplies the English meaning and an example sentence,
a morphological analyzer supplies the reading. Cards are written as
"front;back" lines ready for Anki's text import.

Examples:
  tangocards                          # Print the card for 攻撃
  tangocards 単語                     # Print the card for one word
  tangocards --batch words.txt        # Write cards for every word in the file
  tangocards --provider openai --model gpt-4o-mini --batch words.txt`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.tangocards.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process words from file (one per line, optionally \"word = translation\"); words without kana or kanji are skipped")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", flags.OutputFile, "Output file for batch mode (overwritten)")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move an existing output file to archive/ before writing")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List models served by the configured endpoint")

	// Model flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Model provider: ollama, openai, gemini, anthropic")
	cmd.Flags().StringVarP(&flags.Model, "model", "m", flags.Model, "Model name")
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", "", "OpenAI-compatible endpoint (default: local Ollama for the ollama provider)")
	cmd.Flags().StringVar(&flags.Analyzer, "analyzer", flags.Analyzer, "Morphological analyzer: kagome (built in) or mecab")

	// Batch tuning
	cmd.Flags().IntVarP(&flags.Concurrency, "concurrency", "j", 0, "Maximum words processed at once (0 = all at once)")
	cmd.Flags().Float64Var(&flags.Rate, "rate", 0, "Maximum model requests per second (0 = unlimited)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Time limit per card, e.g. 90s (0 = none)")

	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

// viperKeys maps flag names to configuration keys
var viperKeys = map[string]string{
	"batch":       "batch",
	"output":      "output",
	"archive":     "archive",
	"provider":    "provider",
	"model":       "model",
	"base-url":    "base_url",
	"analyzer":    "analyzer",
	"concurrency": "concurrency",
	"rate":        "rate",
	"timeout":     "timeout",
	"log-level":   "log_level",
	"log-format":  "log_format",
}

func bindFlagsToViper(cmd *cobra.Command) {
	for flag, key := range viperKeys {
		viper.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".tangocards" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tangocards")
	}

	// Environment variables
	viper.SetEnvPrefix("TANGOCARDS")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// LoadConfig resolves flags, environment and config file into a validated
// configuration
func LoadConfig() (*config.Config, error) {
	cfg := config.Default()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	cfg.Provider = strings.ToLower(cfg.Provider)
	if cfg.APIKey == "" {
		cfg.APIKey = GetAPIKey(cfg.Provider)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var apiKeyEnv = map[string]string{
	"openai":    "OPENAI_API_KEY",
	"gemini":    "GEMINI_API_KEY",
	"anthropic": "ANTHROPIC_API_KEY",
}

// GetAPIKey retrieves the API key for provider from environment or config
func GetAPIKey(provider string) string {
	// First check environment variable
	if env, ok := apiKeyEnv[provider]; ok {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}

	// Then check config file
	return viper.GetString(provider + ".api_key")
}
