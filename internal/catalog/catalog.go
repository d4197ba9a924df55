package catalog

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"charvault/internal/models"
)

// Catalog holds the definition tables loaded at startup. The maps are never
// mutated afterwards; changing a definition file requires a restart.
type Catalog struct {
	Items  map[models.ID]models.ItemDefinition
	Spells map[models.ID]models.SpellDefinition
	Skills map[models.ID]models.SkillDefinition
}

type itemEntry struct {
	ID    string `xml:"id"`
	Slot  string `xml:"Slot"`
	Name  string `xml:"Name"`
	Image string `xml:"Image"`
}

type itemsFile struct {
	Items []itemEntry `xml:"Item"`
}

type defEntry struct {
	ID    string `xml:"id"`
	Name  string `xml:"name"`
	Image string `xml:"image"`
}

type spellsFile struct {
	Spells []defEntry `xml:"Spell"`
}

type skillsFile struct {
	Skills []defEntry `xml:"Skill"`
}

// Load reads items.xml, spells.xml and skills.xml from dir.
func Load(dir string) (*Catalog, error) {
	cat := &Catalog{
		Items:  make(map[models.ID]models.ItemDefinition),
		Spells: make(map[models.ID]models.SpellDefinition),
		Skills: make(map[models.ID]models.SkillDefinition),
	}

	var items itemsFile
	if err := parseFile(filepath.Join(dir, "items.xml"), &items); err != nil {
		return nil, err
	}
	for _, e := range items.Items {
		id := strings.TrimSpace(e.ID)
		slot := strings.TrimSpace(e.Slot)
		// entries without an id or slot cannot be placed and are skipped
		if id == "" || slot == "" {
			continue
		}
		cat.Items[models.ID(id)] = models.ItemDefinition{
			ID:    id,
			Slot:  slot,
			Name:  strings.TrimSpace(e.Name),
			Image: strings.TrimSpace(e.Image),
		}
	}

	var spells spellsFile
	if err := parseFile(filepath.Join(dir, "spells.xml"), &spells); err != nil {
		return nil, err
	}
	for _, e := range spells.Spells {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			continue
		}
		cat.Spells[models.ID(id)] = models.SpellDefinition{
			ID:    id,
			Name:  strings.TrimSpace(e.Name),
			Image: strings.TrimSpace(e.Image),
		}
	}

	var skills skillsFile
	if err := parseFile(filepath.Join(dir, "skills.xml"), &skills); err != nil {
		return nil, err
	}
	for _, e := range skills.Skills {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			continue
		}
		cat.Skills[models.ID(id)] = models.SkillDefinition{
			ID:    id,
			Name:  strings.TrimSpace(e.Name),
			Image: strings.TrimSpace(e.Image),
		}
	}

	return cat, nil
}

func parseFile(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read definition file: %w", err)
	}

	if err := xml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	return nil
}
