package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"charvault/internal/models"
)

var (
	ErrTooLarge = errors.New("file too large")
	ErrNotJSON  = errors.New("invalid JSON in file")
	ErrBadName  = errors.New("missing or invalid CharName")
)

// payload is the allow-list of save-file fields. Decoding through it discards
// everything else a save file carries, and keeps an uploader from smuggling
// in an index or a hash of their choosing.
type payload struct {
	CharName            json.RawMessage `json:"CharName"`
	CharClass           json.RawMessage `json:"CharClass"`
	CharLevel           json.RawMessage `json:"CharLevel"`
	CharacterInv        json.RawMessage `json:"CharacterInv"`
	CharacterEquip      []models.ID     `json:"CharacterEquip"`
	EquipSlotQuantities json.RawMessage `json:"EquipSlotQuantities"`
	CharacterSpells     []models.ID     `json:"CharacterSpells"`
	CharacterSkills     []models.ID     `json:"CharacterSkills"`
	TutorialsDone       json.RawMessage `json:"TutorialsDone"`
	CurHP               json.RawMessage `json:"CurHP"`
	CurMana             json.RawMessage `json:"CurMana"`
	CurrentXP           json.RawMessage `json:"CurrentXP"`
	Gold                json.RawMessage `json:"Gold"`
	CompletedQuests     []string        `json:"CompletedQuests"`
	ActiveQuests        []string        `json:"ActiveQuests"`
	Keyring             json.RawMessage `json:"Keyring"`
	AuraItem            models.ID       `json:"AuraItem"`
	CharmItem           models.ID       `json:"CharmItem"`
	CharmQual           json.RawMessage `json:"CharmQual"`
}

// Validate checks an uploaded save payload and extracts the recognized field
// set into a candidate record. The candidate carries no index, no secret hash
// and no discord id; those are assigned further down the write path.
func Validate(raw []byte, maxBytes int64) (models.CharacterRecord, error) {
	if int64(len(raw)) > maxBytes {
		return models.CharacterRecord{}, fmt.Errorf("%w: %d bytes exceeds %d byte limit", ErrTooLarge, len(raw), maxBytes)
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.CharacterRecord{}, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}

	if p.CharName == nil {
		return models.CharacterRecord{}, ErrBadName
	}
	var name string
	if err := json.Unmarshal(p.CharName, &name); err != nil {
		return models.CharacterRecord{}, ErrBadName
	}
	if strings.TrimSpace(name) == "" {
		return models.CharacterRecord{}, ErrBadName
	}

	return models.CharacterRecord{
		CharName:            name,
		CharClass:           p.CharClass,
		CharLevel:           p.CharLevel,
		CharacterInv:        p.CharacterInv,
		CharacterEquip:      p.CharacterEquip,
		EquipSlotQuantities: p.EquipSlotQuantities,
		CharacterSpells:     p.CharacterSpells,
		CharacterSkills:     p.CharacterSkills,
		TutorialsDone:       p.TutorialsDone,
		CurHP:               p.CurHP,
		CurMana:             p.CurMana,
		CurrentXP:           p.CurrentXP,
		Gold:                p.Gold,
		CompletedQuests:     p.CompletedQuests,
		ActiveQuests:        p.ActiveQuests,
		Keyring:             p.Keyring,
		AuraItem:            p.AuraItem,
		CharmItem:           p.CharmItem,
		CharmQual:           p.CharmQual,
	}, nil
}
