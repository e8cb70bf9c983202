package crypto

import "testing"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	secret := "short-key"
	ciphertext, err := EncryptString(secret, "hello world")
	if err != nil {
		t.Fatalf("EncryptString failed: %v", err)
	}
	if ciphertext == "hello world" {
		t.Fatal("ciphertext should differ from plaintext")
	}

	plaintext, err := DecryptString(secret, ciphertext)
	if err != nil {
		t.Fatalf("DecryptString failed: %v", err)
	}
	if plaintext != "hello world" {
		t.Fatalf("round trip mismatch: %q", plaintext)
	}
}

func TestEncryptProducesUniqueCiphertexts(t *testing.T) {
	a, err := EncryptString("secret", "same input")
	if err != nil {
		t.Fatal(err)
	}
	b, err := EncryptString("secret", "same input")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("nonce reuse: two encryptions produced identical ciphertexts")
	}
}

func TestDecryptWithWrongKey(t *testing.T) {
	ciphertext, err := EncryptString("right-key", "payload")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecryptString("wrong-key", ciphertext); err == nil {
		t.Fatal("decryption with wrong key should fail")
	}
}

func TestEmptySecretRejected(t *testing.T) {
	if _, err := EncryptString("", "x"); err == nil {
		t.Fatal("empty secret should be rejected")
	}
	if _, err := DecryptString("", "x"); err == nil {
		t.Fatal("empty secret should be rejected")
	}
}

func TestDecryptGarbage(t *testing.T) {
	if _, err := DecryptString("secret", "not base64 !!"); err == nil {
		t.Fatal("invalid base64 should fail")
	}
	if _, err := DecryptString("secret", "QQ=="); err == nil {
		t.Fatal("truncated ciphertext should fail")
	}
}
