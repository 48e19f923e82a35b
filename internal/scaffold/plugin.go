package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/manifest"
)

// Data holds the template variables available to plugin templates.
type Data struct {
	Name        string // e.g. "ExamplePlugin"
	Description string
	Version     string // semver, e.g. "1.0.0"
	Year        int
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewData returns Data for a plugin called name with default fields.
func NewData(name string) *Data {
	return &Data{
		Name:        name,
		Description: name + " plugin for AliucordRN",
		Version:     "1.0.0",
		Year:        time.Now().Year(),
	}
}

// Generate writes a new plugin into outputDir from the embedded templates.
// outputDir must not exist or be empty.
func Generate(data *Data, outputDir string) (*Result, error) {
	if err := ValidatePluginName(data.Name); err != nil {
		return nil, err
	}

	const templatesDir = "templates/plugin"
	entries, err := fs.ReadDir(templateFS, templatesDir)
	if err != nil {
		return nil, fmt.Errorf("reading plugin templates: %w", err)
	}

	if existing, err := os.ReadDir(outputDir); err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{OutputDir: outputDir}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplBytes, err := fs.ReadFile(templateFS, path.Join(templatesDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}

		tmpl, err := template.New(entry.Name()).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(outputDir, outName)
		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, outName)
	}

	valResult, err := manifest.ValidateFile(filepath.Join(outputDir, manifest.FileName))
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not validate manifest: %v", err))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			result.Warnings = append(result.Warnings, issue.String())
		}
	}

	return result, nil
}
