package utils_test

import (
	"testing"

	"venvet/utils"
)

func TestHashPassword(t *testing.T) {
	hash, err := utils.HashPassword("Passw0rd")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "Passw0rd" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !utils.CheckPasswordHash("Passw0rd", hash) {
		t.Error("hash does not verify against its own password")
	}
	if utils.CheckPasswordHash("passw0rd", hash) {
		t.Error("hash verified against a different password")
	}

	// bcrypt salts, so hashing twice gives different hashes
	hash2, err := utils.HashPassword("Passw0rd")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == hash2 {
		t.Error("two hashes of the same password should differ")
	}
}

func TestGenerateToken(t *testing.T) {
	tok := utils.GenerateToken(32)
	if tok == "" {
		t.Fatal("empty token")
	}
	// 32 bytes base64url encoded
	if len(tok) != 44 {
		t.Errorf("expected 44 char token, got %d", len(tok))
	}

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		v := utils.GenerateToken(32)
		if seen[v] {
			t.Fatal("duplicate token generated")
		}
		seen[v] = true
	}
}
