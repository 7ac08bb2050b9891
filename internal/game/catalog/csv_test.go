package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironvale/forge/internal/game/catalog"
)

const csvHeader = "id,name,type,rarity,damage,range,weight,critChance,critMult,element,growthPerLevel,level\n"

func TestParseCSV_LoadsRows(t *testing.T) {
	sheet := csvHeader +
		"ws_001,Iron Sword,Sword,Common,10,1.5,3.2,0.05,1.5,None,1.02,1\n" +
		"wa_002,Frost Axe,Axe,Rare,18,1.2,5.0,0.1,1.8,Ice,1.05,3\n"

	templates, err := catalog.ParseCSV(strings.NewReader(sheet))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(templates))
	}

	sword := templates[0]
	if sword.ID != "ws_001" || sword.Name != "Iron Sword" {
		t.Errorf("identity fields not loaded: %+v", sword)
	}
	if sword.Type != "Sword" || sword.Rarity != "Common" || sword.Element != "None" {
		t.Errorf("enum fields not loaded: %+v", sword)
	}
	if sword.Damage != 10 || sword.Reach != 1.5 || sword.Weight != 3.2 {
		t.Errorf("numeric fields not loaded: %+v", sword)
	}
	if sword.Level != 1 || sword.GrowthPerLevel != 1.02 {
		t.Errorf("progression fields not loaded: %+v", sword)
	}
	if sword.AttackSpeed != 1.0 {
		t.Errorf("expected default attack speed 1.0, got %v", sword.AttackSpeed)
	}

	axe := templates[1]
	if axe.Rarity != "Rare" || axe.Element != "Ice" || axe.Level != 3 {
		t.Errorf("second row not loaded: %+v", axe)
	}
}

func TestParseCSV_NoHeader(t *testing.T) {
	sheet := "ws_001,Iron Sword,Sword,Common,10,1.5,3.2,0.05,1.5,None,1.02,1\n"
	templates, err := catalog.ParseCSV(strings.NewReader(sheet))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(templates))
	}
}

// TestParseCSV_MalformedFieldsResolveToDefaults pins the repair contract for
// legacy sheets: unparseable floats become 0.0, unparseable levels become 1,
// and unknown enum names fall back to the first enum value.
func TestParseCSV_MalformedFieldsResolveToDefaults(t *testing.T) {
	sheet := csvHeader +
		"wb_003,Shadow Bow,flail,mythic,abc,xyz,--,NaN,1.5,void,oops,zero\n"

	templates, err := catalog.ParseCSV(strings.NewReader(sheet))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(templates))
	}

	tmpl := templates[0]
	if tmpl.Type != "Sword" {
		t.Errorf("unknown type must default to Sword, got %q", tmpl.Type)
	}
	if tmpl.Rarity != "Common" {
		t.Errorf("unknown rarity must default to Common, got %q", tmpl.Rarity)
	}
	if tmpl.Element != "None" {
		t.Errorf("unknown element must default to None, got %q", tmpl.Element)
	}
	if tmpl.Damage != 0 || tmpl.Reach != 0 || tmpl.Weight != 0 {
		t.Errorf("malformed floats must default to 0.0: %+v", tmpl)
	}
	if tmpl.CriticalChance != 0 {
		t.Errorf("NaN crit chance must default to 0.0, got %v", tmpl.CriticalChance)
	}
	if tmpl.GrowthPerLevel != 0 {
		t.Errorf("malformed growth must default to 0.0, got %v", tmpl.GrowthPerLevel)
	}
	if tmpl.Level != 1 {
		t.Errorf("malformed level must default to 1, got %d", tmpl.Level)
	}
	if err := tmpl.Validate(); err != nil {
		t.Errorf("repaired template must validate, got: %v", err)
	}
}

func TestParseCSV_SubOneLevelClampsToOne(t *testing.T) {
	sheet := csvHeader +
		"ws_005,Rusty Sword,Sword,Common,5,1.0,2.0,0.01,1.2,None,1.01,0\n"
	templates, err := catalog.ParseCSV(strings.NewReader(sheet))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if templates[0].Level != 1 {
		t.Errorf("level 0 must clamp to 1, got %d", templates[0].Level)
	}
}

func TestParseCSV_WrongColumnCount(t *testing.T) {
	sheet := csvHeader + "ws_001,Iron Sword,Sword\n"
	if _, err := catalog.ParseCSV(strings.NewReader(sheet)); err == nil {
		t.Fatal("expected error for wrong column count, got nil")
	}
}

func TestParseCSV_EmptyIDFailsRow(t *testing.T) {
	sheet := csvHeader + ",Nameless,Sword,Common,10,1.5,3.2,0.05,1.5,None,1.02,1\n"
	if _, err := catalog.ParseCSV(strings.NewReader(sheet)); err == nil {
		t.Fatal("expected error for empty id, got nil")
	}
}

func TestParseCSV_NegativeDamageFailsRow(t *testing.T) {
	sheet := csvHeader + "wc_004,Cursed Blade,Sword,Epic,-5,1.5,3.2,0.05,1.5,Fire,1.02,1\n"
	if _, err := catalog.ParseCSV(strings.NewReader(sheet)); err == nil {
		t.Fatal("expected error for negative damage, got nil")
	}
}

func TestLoadCSV_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weapons.csv")
	sheet := csvHeader + "ws_001,Iron Sword,Sword,Common,10,1.5,3.2,0.05,1.5,None,1.02,1\n"
	if err := os.WriteFile(path, []byte(sheet), 0644); err != nil {
		t.Fatalf("failed to write temp CSV: %v", err)
	}

	templates, err := catalog.LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if len(templates) != 1 || templates[0].ID != "ws_001" {
		t.Fatalf("unexpected load result: %+v", templates)
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	if _, err := catalog.LoadCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
