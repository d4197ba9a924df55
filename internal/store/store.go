package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"charvault/internal/models"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound   = errors.New("character not found")
	ErrInvalidKey = errors.New("invalid key")
)

const rosterFile = "characters.json"

// Store persists the character roster as a single JSON file. Every mutation
// reads the whole collection, changes it in memory and rewrites the file, so
// readers never observe a partially applied record. Concurrent writers can
// race (last write wins); the service runs as a single process.
type Store struct {
	rosterPath string
	adminPath  string
}

// Open prepares the data directory and provisions the admin key on first run.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{
		rosterPath: filepath.Join(dataDir, rosterFile),
		adminPath:  filepath.Join(dataDir, adminKeyFile),
	}

	if err := s.initAdminKey(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) readAll() ([]models.CharacterRecord, error) {
	data, err := os.ReadFile(s.rosterPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	var records []models.CharacterRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	return records, nil
}

func (s *Store) writeAll(records []models.CharacterRecord) error {
	if records == nil {
		records = []models.CharacterRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}

	if err := os.WriteFile(s.rosterPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write roster: %w", err)
	}

	return nil
}

// Upsert stores candidate under (CharName, key) ownership. A record with the
// same name whose stored hash verifies against key is replaced in place and
// keeps its index; otherwise the candidate is appended with the next free
// index (max existing + 1, or 1 for an empty roster). The returned record has
// its secret hash stripped. The second return value reports whether an
// existing record was replaced.
func (s *Store) Upsert(candidate models.CharacterRecord, key string) (models.CharacterRecord, bool, error) {
	records, err := s.readAll()
	if err != nil {
		return models.CharacterRecord{}, false, err
	}

	existing := -1
	for i, rec := range records {
		if rec.CharName == candidate.CharName && rec.SecretHash != "" &&
			bcrypt.CompareHashAndPassword([]byte(rec.SecretHash), []byte(key)) == nil {
			existing = i
			break
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return models.CharacterRecord{}, false, fmt.Errorf("failed to hash key: %w", err)
	}
	candidate.SecretHash = string(hash)

	if existing > -1 {
		candidate.Index = records[existing].Index
		records[existing] = candidate
		if err := s.writeAll(records); err != nil {
			return models.CharacterRecord{}, false, err
		}
		return candidate.Public(), true, nil
	}

	next := 1
	for _, rec := range records {
		if rec.Index >= next {
			next = rec.Index + 1
		}
	}
	candidate.Index = next

	records = append(records, candidate)
	if err := s.writeAll(records); err != nil {
		return models.CharacterRecord{}, false, err
	}

	return candidate.Public(), false, nil
}

// ListSummaries returns one summary per record in storage order.
func (s *Store) ListSummaries() ([]models.CharacterSummary, error) {
	records, err := s.readAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.CharacterSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, models.CharacterSummary{
			Index:     rec.Index,
			CharName:  rec.CharName,
			CharClass: rec.CharClass,
			CharLevel: rec.CharLevel,
			DiscordID: rec.DiscordID,
		})
	}

	return summaries, nil
}

// GetByIndex returns the full record with the given index, secret hash
// stripped. Returns ErrNotFound for an unknown index.
func (s *Store) GetByIndex(index int) (models.CharacterRecord, error) {
	records, err := s.readAll()
	if err != nil {
		return models.CharacterRecord{}, err
	}

	for _, rec := range records {
		if rec.Index == index {
			return rec.Public(), nil
		}
	}

	return models.CharacterRecord{}, ErrNotFound
}

// Delete removes the record named charName if key verifies against that
// record's hash or against the admin key. Indices of the remaining records
// are left untouched.
func (s *Store) Delete(charName, key string) error {
	records, err := s.readAll()
	if err != nil {
		return err
	}

	target := -1
	for i, rec := range records {
		if rec.CharName == charName {
			target = i
			break
		}
	}
	if target == -1 {
		return ErrNotFound
	}

	ownerOK := bcrypt.CompareHashAndPassword([]byte(records[target].SecretHash), []byte(key)) == nil
	if !ownerOK && !s.VerifyAdminKey(key) {
		return ErrInvalidKey
	}

	records = append(records[:target], records[target+1:]...)
	return s.writeAll(records)
}
