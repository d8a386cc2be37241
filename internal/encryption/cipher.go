package encryption

import (
	"crypto/cipher"
	"fmt"

	"github.com/aead/skein/threefish"
	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/twofish"
)

// Cipher is a keyed block cipher of one Algorithm variant.
// It holds no mutable state and may be shared by any number of goroutines.
type Cipher struct {
	algorithm Algorithm
	block     cipher.Block
}

// NewCipher keys the primitive for algorithm. The key slice is not retained.
func NewCipher(algorithm Algorithm, key []byte) (*Cipher, error) {
	if len(key) != algorithm.KeySize() {
		return nil, fmt.Errorf("%w: %s needs a %d-byte key, got %d",
			ErrInvalidAlgorithm, algorithm, algorithm.KeySize(), len(key))
	}

	var (
		block cipher.Block
		err   error
	)

	switch algorithm {
	case Blowfish:
		block, err = blowfish.NewCipher(key)
	case Twofish:
		block, err = twofish.NewCipher(key)
	case Threefish256, Threefish512, Threefish1024:
		// The variant follows from the key length; the tweak is all zeroes.
		var tweak [threefish.TweakSize]byte

		block, err = threefish.NewCipher(&tweak, key)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidAlgorithm, algorithm)
	}

	if err != nil {
		return nil, fmt.Errorf("keying %s: %w", algorithm, err)
	}

	if block.BlockSize() != algorithm.BlockSize() {
		return nil, fmt.Errorf("%w: %s primitive reports %d-byte blocks",
			ErrBlockSizeMismatch, algorithm, block.BlockSize())
	}

	return &Cipher{algorithm: algorithm, block: block}, nil
}

// Algorithm returns the variant the cipher was keyed for.
func (c *Cipher) Algorithm() Algorithm {
	return c.algorithm
}

// BlockSize returns the block width in bytes.
func (c *Cipher) BlockSize() int {
	return c.algorithm.BlockSize()
}

// EncryptBlock encrypts exactly one block from src into dst. dst and src may be the same slice.
func (c *Cipher) EncryptBlock(dst, src []byte) error {
	if err := c.check(dst, src); err != nil {
		return err
	}

	c.block.Encrypt(dst, src)

	return nil
}

// DecryptBlock decrypts exactly one block from src into dst. dst and src may be the same slice.
func (c *Cipher) DecryptBlock(dst, src []byte) error {
	if err := c.check(dst, src); err != nil {
		return err
	}

	c.block.Decrypt(dst, src)

	return nil
}

// Apply runs the transform selected by direction.
func (c *Cipher) Apply(direction Direction, dst, src []byte) error {
	if direction == Decrypt {
		return c.DecryptBlock(dst, src)
	}

	return c.EncryptBlock(dst, src)
}

func (c *Cipher) check(dst, src []byte) error {
	size := c.BlockSize()

	if len(src) != size || len(dst) != size {
		return fmt.Errorf("%w: %s wants %d bytes, got src=%d dst=%d",
			ErrBlockSizeMismatch, c.algorithm, size, len(src), len(dst))
	}

	return nil
}
