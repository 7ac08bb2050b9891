package importer

import "github.com/ironvale/forge/internal/game/catalog"

// Source loads weapon templates from a format-specific path and produces
// catalog Templates ready to be written as curated YAML files.
//
// Precondition: sourcePath must exist and contain the expected layout for
// the format.
// Postcondition: returns the loaded templates, or a non-nil error.
type Source interface {
	Load(sourcePath string) ([]*catalog.Template, error)
}

// CSVSource reads the designer loot-sheet CSV export. Malformed numeric
// cells are repaired to safe defaults by the catalog loader.
type CSVSource struct{}

// NewCSVSource returns a Source for the CSV export format.
func NewCSVSource() *CSVSource {
	return &CSVSource{}
}

// Load reads the CSV file at sourcePath.
func (s *CSVSource) Load(sourcePath string) ([]*catalog.Template, error) {
	return catalog.LoadCSV(sourcePath)
}
