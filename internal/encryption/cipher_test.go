package encryption_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/idelchi/gofish/internal/encryption"
)

func newCipher(t *testing.T, alg encryption.Algorithm, passphrase string) *encryption.Cipher {
	t.Helper()

	key, err := encryption.DeriveKey(alg, []byte(passphrase))
	if err != nil {
		t.Fatalf("DeriveKey(%s): %v", alg, err)
	}

	c, err := encryption.NewCipher(alg, key)
	if err != nil {
		t.Fatalf("NewCipher(%s): %v", alg, err)
	}

	return c
}

func TestCipherRoundTrip(t *testing.T) {
	t.Parallel()

	for _, alg := range encryption.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			t.Parallel()

			c := newCipher(t, alg, "correct horse")

			plain := make([]byte, c.BlockSize())
			for i := range plain {
				plain[i] = byte(i + 1)
			}

			sealed := make([]byte, c.BlockSize())
			if err := c.EncryptBlock(sealed, plain); err != nil {
				t.Fatalf("EncryptBlock: %v", err)
			}

			if bytes.Equal(sealed, plain) {
				t.Fatal("EncryptBlock left the block unchanged")
			}

			opened := make([]byte, c.BlockSize())
			if err := c.Apply(encryption.Decrypt, opened, sealed); err != nil {
				t.Fatalf("Apply(decrypt): %v", err)
			}

			if !bytes.Equal(opened, plain) {
				t.Errorf("round trip = %x, want %x", opened, plain)
			}

			// In place.
			buf := append([]byte(nil), plain...)
			if err := c.Apply(encryption.Encrypt, buf, buf); err != nil {
				t.Fatal(err)
			}

			if !bytes.Equal(buf, sealed) {
				t.Error("in-place encryption differs")
			}
		})
	}
}

func TestCipherKeysDiffer(t *testing.T) {
	t.Parallel()

	a := newCipher(t, encryption.Twofish, "one")
	b := newCipher(t, encryption.Twofish, "two")

	block := []byte("sixteen byte blk")

	outA := make([]byte, 16)
	outB := make([]byte, 16)

	if err := a.EncryptBlock(outA, block); err != nil {
		t.Fatal(err)
	}

	if err := b.EncryptBlock(outB, block); err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(outA, outB) {
		t.Error("different passphrases produced the same ciphertext")
	}
}

func TestCipherBlockSizeMismatch(t *testing.T) {
	t.Parallel()

	c := newCipher(t, encryption.Blowfish, "pw")

	if err := c.EncryptBlock(make([]byte, 8), make([]byte, 7)); !errors.Is(err, encryption.ErrBlockSizeMismatch) {
		t.Errorf("EncryptBlock(short src) = %v, want ErrBlockSizeMismatch", err)
	}

	if err := c.DecryptBlock(make([]byte, 16), make([]byte, 8)); !errors.Is(err, encryption.ErrBlockSizeMismatch) {
		t.Errorf("DecryptBlock(long dst) = %v, want ErrBlockSizeMismatch", err)
	}
}

func TestNewCipherKeySize(t *testing.T) {
	t.Parallel()

	if _, err := encryption.NewCipher(encryption.Threefish512, make([]byte, 32)); !errors.Is(err, encryption.ErrInvalidAlgorithm) {
		t.Errorf("NewCipher(threefish-512, 32-byte key) = %v, want ErrInvalidAlgorithm", err)
	}
}
