package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"ai_site_builder/config"
	"ai_site_builder/internal/ai"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "ai-site-builder",
	Short: "Generate websites with a language model and edit them visually",
	Long: `ai-site-builder turns a short website description into HTML, CSS and JavaScript
using an OpenAI-compatible completion endpoint, loads the result into a
component-aware editor and exports a standalone page.

  ai-site-builder serve                       Start the HTTP backend
  ai-site-builder generate --spec site.yaml   Generate a page from a spec file`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadDotEnv()
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory containing config.yaml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDotEnv must run before viper reads the environment.
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		// It's common for .env to not exist (e.g., in production).
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}
}

func newGenerator(cfg config.Config) *ai.Generator {
	return ai.NewGenerator(ai.Settings{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.APIBaseURL,
		Model:       cfg.ModelID,
		Temperature: cfg.Temperature,
		Referer:     cfg.HTTPReferer,
		Title:       cfg.AppTitle,
		Timeout:     cfg.GenerationTimeout,
	})
}
