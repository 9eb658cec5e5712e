package services

import "testing"

func TestCryptoRoundTrip(t *testing.T) {
	c := NewCryptoService("test-secret")

	for _, plaintext := range []string{"John Doe", "42 Luxury Lane", "", "zip 10001"} {
		encrypted, err := c.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q) failed: %v", plaintext, err)
		}
		if plaintext != "" && encrypted == plaintext {
			t.Fatalf("Encrypt(%q) returned the plaintext", plaintext)
		}

		decrypted, err := c.Decrypt(encrypted)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != plaintext {
			t.Fatalf("round trip mismatch: %q != %q", decrypted, plaintext)
		}
	}
}

func TestCryptoNonceUnique(t *testing.T) {
	c := NewCryptoService("test-secret")

	first, _ := c.Encrypt("same input")
	second, _ := c.Encrypt("same input")
	if first == second {
		t.Fatal("two encryptions of the same input produced identical ciphertext")
	}
}

func TestCryptoRejectsGarbage(t *testing.T) {
	c := NewCryptoService("test-secret")

	if _, err := c.Decrypt("not-base64!!"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
	if _, err := c.Decrypt("c2hvcnQ="); err == nil {
		t.Fatal("expected error for truncated ciphertext")
	}

	// Different key cannot decrypt.
	other := NewCryptoService("another-secret")
	encrypted, _ := c.Encrypt("secret data")
	if _, err := other.Decrypt(encrypted); err == nil {
		t.Fatal("decryption with the wrong key succeeded")
	}
}
