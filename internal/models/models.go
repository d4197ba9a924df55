package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an item, spell or skill identifier. Older save files emit numeric
// ids where newer ones emit strings; both decode to the same identifier.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// CharacterRecord is the durable unit stored in the roster file. Field names
// follow the save-file format so records round-trip unchanged. Gameplay
// scalars the service never interprets are carried as raw JSON.
type CharacterRecord struct {
	Index               int             `json:"index"`
	SecretHash          string          `json:"hashedKey,omitempty"`
	CharName            string          `json:"CharName"`
	CharClass           json.RawMessage `json:"CharClass,omitempty"`
	CharLevel           json.RawMessage `json:"CharLevel,omitempty"`
	DiscordID           string          `json:"DiscordId"`
	CharacterInv        json.RawMessage `json:"CharacterInv,omitempty"`
	CharacterEquip      []ID            `json:"CharacterEquip,omitempty"`
	EquipSlotQuantities json.RawMessage `json:"EquipSlotQuantities,omitempty"`
	CharacterSpells     []ID            `json:"CharacterSpells,omitempty"`
	CharacterSkills     []ID            `json:"CharacterSkills,omitempty"`
	TutorialsDone       json.RawMessage `json:"TutorialsDone,omitempty"`
	CurHP               json.RawMessage `json:"CurHP,omitempty"`
	CurMana             json.RawMessage `json:"CurMana,omitempty"`
	CurrentXP           json.RawMessage `json:"CurrentXP,omitempty"`
	Gold                json.RawMessage `json:"Gold,omitempty"`
	CompletedQuests     []string        `json:"CompletedQuests,omitempty"`
	ActiveQuests        []string        `json:"ActiveQuests,omitempty"`
	Keyring             json.RawMessage `json:"Keyring,omitempty"`
	AuraItem            ID              `json:"AuraItem,omitempty"`
	CharmItem           ID              `json:"CharmItem,omitempty"`
	CharmQual           json.RawMessage `json:"CharmQual,omitempty"`
}

// Public returns a copy safe for serialization outside the store.
func (r CharacterRecord) Public() CharacterRecord {
	r.SecretHash = ""
	return r
}

type CharacterSummary struct {
	Index     int             `json:"index"`
	CharName  string          `json:"CharName"`
	CharClass json.RawMessage `json:"CharClass"`
	CharLevel json.RawMessage `json:"CharLevel"`
	DiscordID string          `json:"DiscordId"`
}

type ItemDefinition struct {
	ID    string `json:"id"`
	Slot  string `json:"slot"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type SpellDefinition struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type SkillDefinition struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
