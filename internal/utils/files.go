package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ai_site_builder/internal/types"
)

// ArtifactFiles lists the artifact as files, skipping empty sections.
func ArtifactFiles(a types.GeneratedArtifact) []types.GeneratedFile {
	var files []types.GeneratedFile
	for _, f := range []struct{ name, content string }{
		{"index.html", a.HTML},
		{"styles.css", a.CSS},
		{"script.js", a.JS},
	} {
		if f.content == "" {
			continue
		}
		files = append(files, types.GeneratedFile{
			Filename: f.name,
			Type:     DetermineFileType(f.name),
			Content:  f.content,
		})
	}
	return files
}

// SaveArtifact writes the non-empty artifact sections into dir and returns the paths written.
func SaveArtifact(dir string, a types.GeneratedArtifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	var written []string
	for _, file := range ArtifactFiles(a) {
		path := filepath.Join(dir, file.Filename)
		if err := os.WriteFile(path, []byte(file.Content), 0o644); err != nil {
			return written, fmt.Errorf("failed to write file %s: %w", path, err)
		}
		log.Printf("File saved: %s (%s)", path, file.Type)
		written = append(written, path)
	}
	return written, nil
}
