package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ai_site_builder/config"
	"ai_site_builder/internal/ai"
	"ai_site_builder/internal/client"
	"ai_site_builder/internal/editor"
	"ai_site_builder/internal/export"
	"ai_site_builder/internal/types"
	"ai_site_builder/internal/utils"
	"ai_site_builder/internal/wizard"
)

var (
	generateSpec    string
	generateOut     string
	generateAPIURL  string
	generateSaveDir string
	generateDevice  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a standalone page from a website spec file",
	Long: `Generate reads a YAML website spec, asks the model for the site, loads the
result into a headless editor and exports a standalone HTML page. Without
--spec the form is filled in step by step on the terminal.

Example spec:
  purpose: Portfolio for a landscape photographer
  sections: [Hero, Portfolio, Contact]
  colorScheme: Warm Earth Tones
  fontStyle: Classic Serif
  language: English

Examples:
  ai-site-builder generate
  ai-site-builder generate --spec site.yaml
  ai-site-builder generate --spec site.yaml --api-url http://localhost:8080
  ai-site-builder generate --spec site.yaml --save-dir ./site --out page.html`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateSpec, "spec", "s", "", "Path to the YAML website spec; asks interactively when empty")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", export.FileName, "Exported page path")
	generateCmd.Flags().StringVar(&generateAPIURL, "api-url", "", "Backend URL; calls the model directly when empty")
	generateCmd.Flags().StringVar(&generateSaveDir, "save-dir", "", "Also write index.html, styles.css and script.js here")
	generateCmd.Flags().StringVar(&generateDevice, "device", "", "Device to preview on (Desktop, Tablet, Mobile)")
}

// directBackend calls the model the same way the backend route does.
type directBackend struct {
	generator *ai.Generator
}

func (d directBackend) GenerateWebsiteHTML(ctx context.Context, prompt string) (string, error) {
	return d.generator.GenerateSite(ctx, prompt)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	form := wizard.New()
	if generateSpec == "" {
		if err := askSpec(cmd.InOrStdin(), cmd.OutOrStdout(), form); err != nil {
			return err
		}
	} else {
		spec, err := readSpec(generateSpec)
		if err != nil {
			return err
		}
		form.Load(spec)
	}

	var backend wizard.Generator
	var settle time.Duration
	if generateAPIURL != "" {
		backend = client.New(generateAPIURL, nil)
	} else {
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		backend = directBackend{generator: newGenerator(cfg)}
		settle = cfg.EditorSettleDelay
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	log.Printf("Generating website for %q...", form.Spec().Purpose)
	stop := make(chan struct{})
	go reportProgress(form, stop, progressInterval)
	artifact, err := form.Submit(ctx, backend)
	close(stop)
	if err != nil {
		return err
	}
	if artifact.IsEmpty() {
		log.Println("WARN: the model returned no code sections; exporting the placeholder page.")
	}

	if generateSaveDir != "" {
		written, err := utils.SaveArtifact(generateSaveDir, artifact)
		if err != nil {
			return err
		}
		for _, path := range written {
			log.Printf("Saved %s", path)
		}
	}

	handle := &editor.Handle{}
	err = editor.Bootstrap(ctx, handle, editor.Options{
		Mounts:      editor.Mounts{Canvas: "#gjs", Blocks: "#blocks", Layers: "#layers", Styles: "#styles"},
		Artifact:    artifact,
		SettleDelay: settle,
	})
	if err != nil {
		return fmt.Errorf("failed to start editor: %w", err)
	}
	defer func() { _ = editor.Dispose(handle) }()

	if generateDevice != "" {
		if err := handle.SetDevice(generateDevice); err != nil {
			return err
		}
	}

	page, err := handle.Export()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(generateOut); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(generateOut, []byte(page), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", generateOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", generateOut)
	return nil
}

var progressInterval = 10 * time.Second

// reportProgress logs while a submission is in flight until stop is closed.
func reportProgress(form *wizard.Wizard, stop <-chan struct{}, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if form.Submitting() {
				log.Println("Still waiting for the model...")
			}
		case <-stop:
			return
		}
	}
}

func readSpec(path string) (types.WebsiteSpec, error) {
	var spec types.WebsiteSpec
	data, err := os.ReadFile(path)
	if err != nil {
		return spec, fmt.Errorf("failed to read spec: %w", err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("failed to parse spec %s: %w", path, err)
	}
	return spec, nil
}
