package encryption

import (
	"testing"

	"github.com/angmorpri/morelib/errors"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	enc, err := New("test-passphrase")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	tests := []struct {
		name      string
		plaintext string
	}{
		{"simple", "hello world"},
		{"empty", ""},
		{"unicode", "señal única"},
		{"long", string(make([]byte, 4096))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ct, err := enc.Encrypt(tc.plaintext)
			if err != nil {
				t.Fatalf("Encrypt error: %v", err)
			}
			if ct == tc.plaintext && tc.plaintext != "" {
				t.Error("ciphertext should differ from plaintext")
			}
			pt, err := enc.Decrypt(ct)
			if err != nil {
				t.Fatalf("Decrypt error: %v", err)
			}
			if pt != tc.plaintext {
				t.Errorf("round trip = %q, want %q", pt, tc.plaintext)
			}
		})
	}
}

func TestNonceUniqueness(t *testing.T) {
	enc, _ := New("test-passphrase")
	a, _ := enc.Encrypt("same input")
	b, _ := enc.Encrypt("same input")
	if a == b {
		t.Error("two encryptions of the same input should differ")
	}
}

func TestDecryptWrongKey(t *testing.T) {
	enc, _ := New("key-one")
	other, _ := New("key-two")

	ct, err := enc.Encrypt("secret")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if _, err := other.Decrypt(ct); err == nil {
		t.Error("decrypting with the wrong key should fail")
	}
}

func TestDecryptInvalidInput(t *testing.T) {
	enc, _ := New("test-passphrase")

	if _, err := enc.Decrypt("not base64 %%%"); !errors.IsCode(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT for bad base64, got %v", err)
	}
	if _, err := enc.Decrypt("c2hvcnQ="); !errors.IsCode(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT for short payload, got %v", err)
	}
}

func TestEncryptorInterface(t *testing.T) {
	var e Encryptor
	enc, err := New("test-passphrase")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	e = enc
	if _, err := e.Encrypt("x"); err != nil {
		t.Errorf("interface Encrypt error: %v", err)
	}
}
