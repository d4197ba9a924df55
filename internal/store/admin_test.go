package store

import (
	"strings"
	"testing"
)

func TestGenerateAdminKeyComposition(t *testing.T) {
	for i := 0; i < 20; i++ {
		key, err := generateAdminKey(adminKeyLength)
		if err != nil {
			t.Fatal("Failed to generate admin key:", err)
		}

		if len(key) != adminKeyLength {
			t.Fatalf("Expected length %d, got %d (%q)", adminKeyLength, len(key), key)
		}

		if !strings.ContainsAny(key, adminUppercase) {
			t.Errorf("Key %q missing an uppercase character", key)
		}
		if !strings.ContainsAny(key, adminLowercase) {
			t.Errorf("Key %q missing a lowercase character", key)
		}
		if !strings.ContainsAny(key, adminDigits) {
			t.Errorf("Key %q missing a digit", key)
		}
		if !strings.ContainsAny(key, adminSymbols) {
			t.Errorf("Key %q missing a symbol", key)
		}
		if strings.ContainsAny(key, "0O1lI") {
			t.Errorf("Key %q contains an ambiguous character", key)
		}
	}
}

func TestVerifyAdminKey(t *testing.T) {
	s := setupTestStore(t)

	if s.VerifyAdminKey("definitely-wrong") {
		t.Error("Random key should not verify as admin")
	}
}
