package store

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"math/big"
	"os"

	"charvault/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

const adminKeyFile = "admin_key.txt"

// Character sets for generated admin keys. Visually ambiguous glyphs
// (0, O, 1, l, I) are excluded.
const (
	adminKeyLength = 12
	adminUppercase = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	adminLowercase = "abcdefghijkmnopqrstuvwxyz"
	adminDigits    = "23456789"
	adminSymbols   = "#$@!%&*?"
)

// initAdminKey provisions the admin key on first startup. Only the bcrypt
// hash is persisted; the plaintext is printed once and cannot be recovered.
func (s *Store) initAdminKey() error {
	if _, err := os.Stat(s.adminPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat admin key file: %w", err)
	}

	key, err := generateAdminKey(adminKeyLength)
	if err != nil {
		return fmt.Errorf("failed to generate admin key: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin key: %w", err)
	}

	if err := os.WriteFile(s.adminPath, hash, 0o600); err != nil {
		return fmt.Errorf("failed to write admin key file: %w", err)
	}

	logger.Plain("New admin key generated: " + key)
	logger.Plain("IMPORTANT: save this admin key securely. It will not be shown again.")

	return nil
}

// VerifyAdminKey reports whether key matches the stored admin key hash.
func (s *Store) VerifyAdminKey(key string) bool {
	hash, err := os.ReadFile(s.adminPath)
	if err != nil {
		logger.Error("Failed to read admin key file", "error", err)
		return false
	}

	return bcrypt.CompareHashAndPassword(bytes.TrimSpace(hash), []byte(key)) == nil
}

// generateAdminKey builds a random key containing at least one character from
// each set, then shuffles so the mandatory picks don't sit at the front.
func generateAdminKey(length int) (string, error) {
	all := adminUppercase + adminLowercase + adminDigits + adminSymbols

	picks := make([]byte, 0, length)
	for _, set := range []string{adminUppercase, adminLowercase, adminDigits, adminSymbols} {
		c, err := randChar(set)
		if err != nil {
			return "", err
		}
		picks = append(picks, c)
	}

	for len(picks) < length {
		c, err := randChar(all)
		if err != nil {
			return "", err
		}
		picks = append(picks, c)
	}

	for i := len(picks) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		picks[i], picks[j] = picks[j], picks[i]
	}

	return string(picks), nil
}

func randChar(set string) (byte, error) {
	i, err := randInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
