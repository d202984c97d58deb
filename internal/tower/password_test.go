package tower

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	salt, err := GenerateSaltHex()
	if err != nil {
		t.Fatalf("generate salt: %v", err)
	}
	hash, err := HashPassword("tow-truck-42", salt)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword("tow-truck-42", salt, hash) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("wrong-password", salt, hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestHashPasswordEmpty(t *testing.T) {
	if _, err := HashPassword("", "aabb"); err == nil {
		t.Fatal("expected error for empty password")
	}
}
