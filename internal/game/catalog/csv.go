package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ironvale/forge/internal/game/rarity"
	"github.com/ironvale/forge/internal/game/weapon"
)

// csvColumns is the fixed legacy sheet layout:
// id,name,type,rarity,damage,range,weight,critChance,critMult,element,growthPerLevel,level
const csvColumns = 12

// ParseCSV reads weapon templates from the legacy spreadsheet format.
// Malformed numeric fields resolve to safe defaults (0.0 for floats, 1 for
// level) and unrecognized enum names fall back to the first enum value, so
// a sloppy sheet still imports; only structural problems (wrong column
// count, empty id or name) fail the row.
//
// Postcondition: every returned template passes Validate.
func ParseCSV(r io.Reader) ([]*Template, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = csvColumns
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("catalog: reading csv: %w", err)
	}

	var templates []*Template
	for i, rec := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "id") {
			continue // header row
		}
		t := templateFromRecord(rec)
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: csv row %d: %w", i+1, err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// LoadCSV reads weapon templates from the CSV file at path.
func LoadCSV(path string) ([]*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: cannot open %q: %w", path, err)
	}
	defer f.Close()

	templates, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: loading %q: %w", path, err)
	}
	return templates, nil
}

// templateFromRecord maps one CSV record to a Template, applying the safe
// defaults for malformed fields at this boundary so nothing downstream has
// to re-check.
func templateFromRecord(rec []string) *Template {
	typ, _ := weapon.ParseType(rec[2])
	tier, _ := rarity.Parse(rec[3])
	elem, _ := weapon.ParseElement(rec[9])

	t := &Template{
		ID:             strings.TrimSpace(rec[0]),
		Name:           strings.TrimSpace(rec[1]),
		Type:           typ.String(),
		Rarity:         tier.String(),
		Damage:         parseFloatField(rec[4]),
		Reach:          parseFloatField(rec[5]),
		Weight:         parseFloatField(rec[6]),
		CriticalChance: parseFloatField(rec[7]),
		CriticalDamage: parseFloatField(rec[8]),
		Element:        elem.String(),
		GrowthPerLevel: parseFloatField(rec[10]),
		Level:          parseLevelField(rec[11]),
	}
	t.applyDefaults()
	return t
}

// parseFloatField parses a float, resolving malformed or non-finite input
// to 0.0.
func parseFloatField(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// parseLevelField parses a level, resolving malformed or sub-1 input to 1.
func parseLevelField(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return 1
	}
	return v
}
