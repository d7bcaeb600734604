package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("hash should use argon2id format, got %q", hash)
	}

	ok, err := CheckPassword("admin123", hash)
	if err != nil {
		t.Fatalf("CheckPassword: %v", err)
	}
	if !ok {
		t.Error("correct password should verify")
	}

	ok, err = CheckPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("CheckPassword: %v", err)
	}
	if ok {
		t.Error("wrong password should not verify")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}

func TestCheckPasswordInvalidFormat(t *testing.T) {
	tests := []string{
		"",
		"not-a-hash",
		"$bcrypt$something",
		"$argon2id$v=19$m=19456,t=2,p=1$salt",
	}

	for _, hash := range tests {
		if _, err := CheckPassword("password", hash); err == nil {
			t.Errorf("CheckPassword(%q) should return an error", hash)
		}
	}
}

func TestNeedsRehash(t *testing.T) {
	hash, err := HashPassword("password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if NeedsRehash(hash) {
		t.Error("fresh hash should not need rehash")
	}

	// Legacy hash with heavier memory parameter.
	legacy := "$argon2id$v=19$m=65536,t=1,p=4$c29tZXNhbHQ$RdescudvJCsgt3ub+b+dWRWJTmaaJObG"
	if !NeedsRehash(legacy) {
		t.Error("hash with old parameters should need rehash")
	}

	if !NeedsRehash("not-a-hash") {
		t.Error("malformed hash should need rehash")
	}
}
