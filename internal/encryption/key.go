package encryption

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"io"

	"github.com/absfs/absfs"
)

// blowfishKeySize is the largest key Blowfish accepts (448 bits).
const blowfishKeySize = 56

// Derive builds the keyed cipher for family and blockWidth from a passphrase.
// If passphrase names an existing regular file in fsys, the file contents are used instead.
// The passphrase copy and the key bytes are cleared before returning.
func Derive(fsys absfs.FileSystem, family Family, blockWidth int, passphrase string) (*Cipher, error) {
	algorithm, err := NewAlgorithm(family, blockWidth)
	if err != nil {
		return nil, err
	}

	secret, err := ResolvePassphrase(fsys, passphrase)
	if err != nil {
		return nil, err
	}
	defer clear(secret)

	key, err := DeriveKey(algorithm, secret)
	if err != nil {
		return nil, err
	}
	defer clear(key)

	return NewCipher(algorithm, key)
}

// ResolvePassphrase returns the contents of the file named by value, or value itself
// when it does not name a regular file.
func ResolvePassphrase(fsys absfs.FileSystem, value string) ([]byte, error) {
	info, err := fsys.Stat(value)
	if err != nil || !info.Mode().IsRegular() {
		return []byte(value), nil
	}

	file, err := fsys.Open(value)
	if err != nil {
		return nil, fmt.Errorf("%w: opening passphrase file: %w", ErrIO, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: reading passphrase file: %w", ErrIO, err)
	}

	return data, nil
}

// DeriveKey hashes passphrase into key material for algorithm.
//
//	blowfish        SHA-512, first 56 bytes
//	twofish         SHA-256
//	threefish-256   SHA-256
//	threefish-512   SHA-512
//	threefish-1024  SHA-512(p) || SHA-512(SHA-512(p))
func DeriveKey(algorithm Algorithm, passphrase []byte) ([]byte, error) {
	switch algorithm {
	case Blowfish:
		sum := sha512.Sum512(passphrase)

		return append([]byte(nil), sum[:blowfishKeySize]...), nil
	case Twofish, Threefish256:
		sum := sha256.Sum256(passphrase)

		return sum[:], nil
	case Threefish512:
		sum := sha512.Sum512(passphrase)

		return sum[:], nil
	case Threefish1024:
		first := sha512.Sum512(passphrase)
		second := sha512.Sum512(first[:])

		key := make([]byte, 0, 2*sha512.Size)
		key = append(key, first[:]...)

		return append(key, second[:]...), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidAlgorithm, algorithm)
	}
}
