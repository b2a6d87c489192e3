package service

import (
	"strings"
	"testing"
)

func TestPassword_RoundTrip(t *testing.T) {
	for _, password := range []string{"pw123", "", "correct horse battery staple", "päss wörd 🌬"} {
		stored, err := HashPassword(password)
		if err != nil {
			t.Fatalf("hash %q: %v", password, err)
		}

		if !VerifyPassword(stored, password) {
			t.Errorf("stored hash of %q should verify against itself", password)
		}
		if VerifyPassword(stored, password+"x") {
			t.Errorf("stored hash of %q should not verify a different password", password)
		}
	}
}

func TestPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("pw123")
	if err != nil {
		t.Fatal(err)
	}
	second, err := HashPassword("pw123")
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Error("hashing the same password twice should produce different stored strings")
	}
	if !VerifyPassword(first, "pw123") || !VerifyPassword(second, "pw123") {
		t.Error("both stored strings should verify against the original password")
	}
}

func TestPassword_StoredFormat(t *testing.T) {
	stored, err := HashPassword("pw123")
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 128 {
		t.Errorf("stored length = %d, want 128 (64-char salt + 64-char digest)", len(stored))
	}
	if strings.ToLower(stored) != stored {
		t.Error("stored hash should be lowercase hex")
	}
}

func TestPassword_MalformedStoredValue(t *testing.T) {
	if VerifyPassword("short", "pw123") {
		t.Error("malformed stored value must never verify")
	}
	if VerifyPassword("", "") {
		t.Error("empty stored value must never verify")
	}
}
