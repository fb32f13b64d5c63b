package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/tangocards/internal/cli"
	"codeberg.org/snonux/tangocards/internal/config"
	"codeberg.org/snonux/tangocards/internal/llm"
	"codeberg.org/snonux/tangocards/internal/models"
	"codeberg.org/snonux/tangocards/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd.Context(), args, flags)
	}

	// Ctrl-C cancels in-flight model calls
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Execute command
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, args []string, flags *cli.Flags) error {
	cfg, err := cli.LoadConfig()
	if err != nil {
		return err
	}
	cli.NewLogger(cfg.LogLevel, cfg.LogFormat)

	// Handle --list-models flag
	if flags.ListModels {
		return listModels(ctx, cfg)
	}

	// Create processor
	proc, err := processor.FromConfig(ctx, cfg)
	if err != nil {
		return err
	}

	// Handle batch processing
	if cfg.BatchFile != "" {
		if _, err := proc.ProcessBatch(ctx); err != nil {
			return err
		}
		fmt.Printf("\nDone! Cards saved to: %s\n", cfg.OutputFile)
		return nil
	}

	// Process single word, or show the demo card
	word := cli.DemoWord
	if len(args) > 0 {
		word = args[0]
	}
	return proc.ProcessSingleWord(ctx, word)
}

func listModels(ctx context.Context, cfg *config.Config) error {
	baseURL := cfg.BaseURL
	switch cfg.Provider {
	case "ollama":
		if baseURL == "" {
			baseURL = llm.DefaultOllamaURL
		}
	case "openai":
	default:
		return fmt.Errorf("--list-models is not supported for provider %s", cfg.Provider)
	}

	lister := models.NewLister(cfg.APIKey, baseURL)
	return lister.PrintModels(ctx, os.Stdout, cfg.Model)
}
