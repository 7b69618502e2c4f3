package auth

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash equals plaintext")
	}

	if !CheckPasswordHash(hash, "hunter2") {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash(hash, "hunter3") {
		t.Error("wrong password accepted")
	}
}
