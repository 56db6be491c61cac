package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"codeberg.org/snonux/mdglot/internal/archive"
	"codeberg.org/snonux/mdglot/internal/cli"
	"codeberg.org/snonux/mdglot/internal/models"
	"codeberg.org/snonux/mdglot/internal/processor"
	"codeberg.org/snonux/mdglot/internal/translation"
)

func main() {
	// Pick up API keys from a local .env if present
	_ = godotenv.Load()

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
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --archive flag
	if flags.Archive {
		if _, err := archive.ArchiveTranslations(flags.OutputDir); err != nil {
			return fmt.Errorf("failed to archive translations: %w", err)
		}
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	target, err := language.Parse(flags.TargetLang)
	if err != nil {
		return fmt.Errorf("invalid target language %q: %w", flags.TargetLang, err)
	}

	// Dry runs never contact the service, so no provider (or key) is needed
	var provider translation.Provider
	if !flags.DryRun {
		provider, err = translation.NewProvider(&translation.Config{
			Provider:    flags.Provider,
			Model:       flags.Model,
			TargetLang:  target,
			SourceLang:  flags.SourceLang,
			OpenAIKey:   cli.GetOpenAIKey(),
			GeminiKey:   cli.GetGeminiKey(),
			Temperature: 0.3,
		})
		if err != nil {
			return err
		}
		provider = translation.NewBreakerProvider(provider)
	}

	ctx := context.Background()

	// Handle single document mode
	if len(args) > 0 {
		doc := args[0]
		proc := processor.New(processor.Config{
			SourceRoot: filepath.Dir(doc),
			OutputRoot: flags.OutputDir,
			Model:      flags.Model,
			Force:      flags.Force,
			DryRun:     flags.DryRun,
		}, provider)
		if _, err := proc.RunSingle(ctx, doc); err != nil {
			return err
		}
		return nil
	}

	// Batch mode over the source tree
	proc := processor.New(processor.Config{
		SourceRoot: flags.SourceDir,
		OutputRoot: flags.OutputDir,
		Model:      flags.Model,
		Force:      flags.Force,
		DryRun:     flags.DryRun,
		Pace:       flags.Pace,
	}, provider)

	if _, err := proc.Run(ctx); err != nil {
		return err
	}

	fmt.Printf("\nDone! Translations saved to: %s\n", filepath.Join(flags.OutputDir, flags.Model))
	return nil
}
