package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/mdglot/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdglot [document]",
		Short: "Markdown Documentation Translator",
		Long: `mdglot translates a tree of Markdown documents into a target language
using an LLM provider and mirrors the results into an output directory
namespaced by model identifier.

Translations that are already newer than their source are skipped, so
re-running after editing a few documents only re-translates those.

Examples:
  mdglot --source docs --target-lang de     # Translate the docs tree to German
  mdglot docs/setup.md --target-lang fr     # Translate a single document
  mdglot --source docs --force              # Re-translate everything
  mdglot --source docs --dry-run            # Show what would be translated`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.mdglot.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.SourceDir, "source", "s", flags.SourceDir, "Source directory to scan for documents")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Output directory (mirrored tree, namespaced by model)")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: openai or gemini")
	cmd.Flags().StringVarP(&flags.Model, "model", "m", flags.Model, "Model identifier (used verbatim in the output path)")
	cmd.Flags().StringVarP(&flags.TargetLang, "target-lang", "t", flags.TargetLang, "Target language as a BCP 47 tag, e.g. en, de, pt-BR")
	cmd.Flags().StringVar(&flags.SourceLang, "source-lang", "", "Source language (default: detect per document)")
	cmd.Flags().BoolVarP(&flags.Force, "force", "f", false, "Re-translate even when the output is up to date")
	cmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "n", false, "Show what would be translated without calling the provider")
	cmd.Flags().DurationVar(&flags.Pace, "pace", flags.Pace, "Delay between documents to respect provider rate limits")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the current output directory and exit")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("source.directory", cmd.Flags().Lookup("source"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("translate.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translate.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("translate.target_lang", cmd.Flags().Lookup("target-lang"))
	viper.BindPFlag("translate.source_lang", cmd.Flags().Lookup("source-lang"))
	viper.BindPFlag("translate.pace", cmd.Flags().Lookup("pace"))
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

		// Search config in home directory with name ".mdglot" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mdglot")
	}

	// Environment variables
	viper.SetEnvPrefix("MDGLOT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translate.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	// First check environment variable
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translate.gemini_key")
}
