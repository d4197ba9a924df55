package equip

import (
	"strings"

	"charvault/internal/models"
)

// SlotNames is the fixed visual slot vocabulary, listed row by row the way
// the layout draws them (4-5-3-5).
var SlotNames = []string{
	"Aura", "Charm", "Head", "Neck",
	"Ring 1", "Hands", "Torso", "Shoulders", "Ring 2",
	"Wrist 1", "Legs", "Wrist 2",
	"Primary", "Waist", "Feet", "Back", "Secondary",
}

// SlotItem is a resolved occupant of a visual slot.
type SlotItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Resolve maps a record's equipped items onto the fixed slot layout. Every
// slot name is present in the result; an empty slot holds nil. Items absent
// from the catalog contribute nothing.
//
// The equipped list conflates three multi-occupant layouts (two rings, two
// wrists, two weapon hands) with single-occupant named slots, so resolution
// runs in two phases: direct placement for named categories, then overflow
// fill in encounter order for rings, wrists and generic weapons. An item
// tagged primary or secondary always wins its slot over a generic weapon.
func Resolve(rec models.CharacterRecord, items map[models.ID]models.ItemDefinition) map[string]*SlotItem {
	equipped := make(map[string]*SlotItem, len(SlotNames))
	for _, name := range SlotNames {
		equipped[name] = nil
	}

	if rec.AuraItem != "" {
		if def, ok := items[rec.AuraItem]; ok {
			equipped["Aura"] = &SlotItem{ID: string(rec.AuraItem), Name: def.Name, Image: def.Image}
		}
	}
	if rec.CharmItem != "" {
		if def, ok := items[rec.CharmItem]; ok {
			equipped["Charm"] = &SlotItem{ID: string(rec.CharmItem), Name: def.Name, Image: def.Image}
		}
	}

	var rings, wrists, weapons []*SlotItem
	for _, itemID := range rec.CharacterEquip {
		def, ok := items[itemID]
		if !ok || def.Slot == "" {
			continue
		}

		item := &SlotItem{ID: string(itemID), Name: def.Name, Image: def.Image}

		switch strings.ToLower(def.Slot) {
		case "ring":
			rings = append(rings, item)
		case "wrist":
			wrists = append(wrists, item)
		case "primaryorsecondary":
			weapons = append(weapons, item)
		case "primary":
			equipped["Primary"] = item
		case "secondary":
			equipped["Secondary"] = item
		default:
			// pass-through: the category names its slot, exact case.
			// Categories outside the vocabulary are dropped.
			if _, known := equipped[def.Slot]; known {
				equipped[def.Slot] = item
			}
		}
	}

	for _, weapon := range weapons {
		if equipped["Primary"] == nil {
			equipped["Primary"] = weapon
		} else if equipped["Secondary"] == nil {
			equipped["Secondary"] = weapon
		}
		// both hands full: discarded
	}

	equipped["Ring 1"] = at(rings, 0)
	equipped["Ring 2"] = at(rings, 1)
	equipped["Wrist 1"] = at(wrists, 0)
	equipped["Wrist 2"] = at(wrists, 1)

	return equipped
}

func at(list []*SlotItem, i int) *SlotItem {
	if i < len(list) {
		return list[i]
	}
	return nil
}
