package equip

import (
	"testing"

	"charvault/internal/models"
)

func itemDefs(defs ...models.ItemDefinition) map[models.ID]models.ItemDefinition {
	m := make(map[models.ID]models.ItemDefinition, len(defs))
	for _, d := range defs {
		m[models.ID(d.ID)] = d
	}
	return m
}

func TestResolveAllSlotsPresent(t *testing.T) {
	slots := Resolve(models.CharacterRecord{}, nil)

	if len(slots) != len(SlotNames) {
		t.Fatalf("Expected %d slots, got %d", len(SlotNames), len(slots))
	}
	for _, name := range SlotNames {
		item, ok := slots[name]
		if !ok {
			t.Errorf("Slot %q missing from result", name)
		}
		if item != nil {
			t.Errorf("Slot %q should be empty, got %+v", name, item)
		}
	}
}

func TestResolveRingOverflow(t *testing.T) {
	items := itemDefs(
		models.ItemDefinition{ID: "r1", Slot: "Ring", Name: "Band of Dawn"},
		models.ItemDefinition{ID: "r2", Slot: "Ring", Name: "Band of Dusk"},
		models.ItemDefinition{ID: "r3", Slot: "Ring", Name: "Band of Night"},
	)
	rec := models.CharacterRecord{CharacterEquip: []models.ID{"r1", "r2", "r3"}}

	slots := Resolve(rec, items)

	if slots["Ring 1"] == nil || slots["Ring 1"].ID != "r1" {
		t.Errorf("Expected Ring 1 = r1, got %+v", slots["Ring 1"])
	}
	if slots["Ring 2"] == nil || slots["Ring 2"].ID != "r2" {
		t.Errorf("Expected Ring 2 = r2, got %+v", slots["Ring 2"])
	}
	for name, item := range slots {
		if item != nil && item.ID == "r3" {
			t.Errorf("Third ring should be discarded, found in %q", name)
		}
	}
}

func TestResolveWristOverflow(t *testing.T) {
	items := itemDefs(
		models.ItemDefinition{ID: "w1", Slot: "Wrist", Name: "Iron Bracer"},
		models.ItemDefinition{ID: "w2", Slot: "Wrist", Name: "Steel Bracer"},
	)
	rec := models.CharacterRecord{CharacterEquip: []models.ID{"w1", "w2"}}

	slots := Resolve(rec, items)

	if slots["Wrist 1"] == nil || slots["Wrist 1"].ID != "w1" {
		t.Errorf("Expected Wrist 1 = w1, got %+v", slots["Wrist 1"])
	}
	if slots["Wrist 2"] == nil || slots["Wrist 2"].ID != "w2" {
		t.Errorf("Expected Wrist 2 = w2, got %+v", slots["Wrist 2"])
	}
}

func TestResolveWeaponPrecedence(t *testing.T) {
	items := itemDefs(
		models.ItemDefinition{ID: "W1", Slot: "PrimaryOrSecondary", Name: "Longsword"},
		models.ItemDefinition{ID: "P", Slot: "Primary", Name: "Runeblade"},
		models.ItemDefinition{ID: "W2", Slot: "PrimaryOrSecondary", Name: "Handaxe"},
	)
	// generic weapon first, tagged primary second: the tag still wins its slot
	rec := models.CharacterRecord{CharacterEquip: []models.ID{"W1", "P", "W2"}}

	slots := Resolve(rec, items)

	if slots["Primary"] == nil || slots["Primary"].ID != "P" {
		t.Errorf("Expected Primary = P, got %+v", slots["Primary"])
	}
	if slots["Secondary"] == nil || slots["Secondary"].ID != "W1" {
		t.Errorf("Expected Secondary = W1, got %+v", slots["Secondary"])
	}
	for name, item := range slots {
		if item != nil && item.ID == "W2" {
			t.Errorf("Overflow weapon should be discarded, found in %q", name)
		}
	}
}

func TestResolveSecondaryTagWins(t *testing.T) {
	items := itemDefs(
		models.ItemDefinition{ID: "S", Slot: "Secondary", Name: "Tower Shield"},
		models.ItemDefinition{ID: "W", Slot: "PrimaryOrSecondary", Name: "Shortsword"},
	)
	rec := models.CharacterRecord{CharacterEquip: []models.ID{"W", "S"}}

	slots := Resolve(rec, items)

	if slots["Secondary"] == nil || slots["Secondary"].ID != "S" {
		t.Errorf("Expected Secondary = S, got %+v", slots["Secondary"])
	}
	if slots["Primary"] == nil || slots["Primary"].ID != "W" {
		t.Errorf("Expected Primary = W, got %+v", slots["Primary"])
	}
}

func TestResolveAuraAndCharm(t *testing.T) {
	items := itemDefs(
		models.ItemDefinition{ID: "a", Slot: "Aura", Name: "Halo", Image: "halo.png"},
		models.ItemDefinition{ID: "c", Slot: "Charm", Name: "Rabbit Foot"},
	)
	rec := models.CharacterRecord{AuraItem: "a", CharmItem: "c"}

	slots := Resolve(rec, items)

	if slots["Aura"] == nil || slots["Aura"].Name != "Halo" {
		t.Errorf("Expected Aura = Halo, got %+v", slots["Aura"])
	}
	if slots["Charm"] == nil || slots["Charm"].Name != "Rabbit Foot" {
		t.Errorf("Expected Charm = Rabbit Foot, got %+v", slots["Charm"])
	}
}

func TestResolveUnknownItem(t *testing.T) {
	items := itemDefs(
		models.ItemDefinition{ID: "h", Slot: "Head", Name: "Iron Helm"},
	)
	rec := models.CharacterRecord{
		CharacterEquip: []models.ID{"ghost", "h"},
		AuraItem:       "also-ghost",
	}

	slots := Resolve(rec, items)

	if slots["Head"] == nil || slots["Head"].ID != "h" {
		t.Errorf("Expected Head = h, got %+v", slots["Head"])
	}
	if slots["Aura"] != nil {
		t.Errorf("Unresolvable aura should leave the slot empty, got %+v", slots["Aura"])
	}
	for name, item := range slots {
		if item != nil && item.ID == "ghost" {
			t.Errorf("Unknown item should contribute to no slot, found in %q", name)
		}
	}
}

func TestResolvePassThroughIsCaseSensitive(t *testing.T) {
	items := itemDefs(
		models.ItemDefinition{ID: "good", Slot: "Torso", Name: "Chainmail"},
		models.ItemDefinition{ID: "bad", Slot: "torso", Name: "Leather Vest"},
	)
	rec := models.CharacterRecord{CharacterEquip: []models.ID{"bad", "good"}}

	slots := Resolve(rec, items)

	if slots["Torso"] == nil || slots["Torso"].ID != "good" {
		t.Errorf("Expected Torso = good, got %+v", slots["Torso"])
	}
	for name, item := range slots {
		if item != nil && item.ID == "bad" {
			t.Errorf("Miscased category should be dropped, found in %q", name)
		}
	}
}
