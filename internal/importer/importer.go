// Package importer converts external weapon content into the catalog's
// curated YAML format.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ironvale/forge/internal/game/catalog"
)

// Importer orchestrates content import from a Source to an output directory.
type Importer struct {
	source Source
}

// New constructs an Importer backed by the given Source.
//
// Precondition: source must be non-nil.
// Postcondition: returns a non-nil Importer.
func New(source Source) *Importer {
	return &Importer{source: source}
}

// Run loads templates from sourcePath, validates each, and writes them as
// YAML files to outputDir. Each output file is named after the template ID,
// sanitized for the filesystem.
//
// Precondition: sourcePath must satisfy the source's layout requirements;
// outputDir must exist or be creatable.
// Postcondition: one YAML file per template is written to outputDir, or an
// error is returned.
func (imp *Importer) Run(sourcePath, outputDir string) error {
	overall := time.Now()

	t0 := time.Now()
	templates, err := imp.source.Load(sourcePath)
	if err != nil {
		return fmt.Errorf("loading source: %w", err)
	}
	fmt.Printf("load    %d template(s) in %s\n", len(templates), time.Since(t0).Round(time.Millisecond))

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	seen := make(map[string]bool, len(templates))
	for _, tpl := range templates {
		t1 := time.Now()

		if seen[tpl.ID] {
			return fmt.Errorf("duplicate template id %q in source", tpl.ID)
		}
		seen[tpl.ID] = true

		data, err := yaml.Marshal(tpl)
		if err != nil {
			return fmt.Errorf("serialising template %q: %w", tpl.ID, err)
		}

		// Validate output is loadable before writing.
		if _, err := catalog.ParseTemplate(data); err != nil {
			return fmt.Errorf("template %q failed validation: %w", tpl.ID, err)
		}

		outPath := filepath.Join(outputDir, NameToID(tpl.ID)+".yaml")
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("writing template %q to %s: %w", tpl.ID, outPath, err)
		}

		fmt.Printf("wrote   %s  (%s)  in %s\n",
			outPath, tpl.Name, time.Since(t1).Round(time.Millisecond))
	}

	fmt.Printf("total   %s\n", time.Since(overall).Round(time.Millisecond))
	return nil
}

// NameToID converts a display name or raw ID to a stable snake_case
// identifier safe for use as a filename.
//
// Postcondition: result is lowercase, contains only [a-z0-9_], and is
// idempotent (NameToID(NameToID(s)) == NameToID(s)).
func NameToID(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	var b strings.Builder
	for _, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
