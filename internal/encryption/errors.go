package encryption

import "errors"

var (
	// ErrInvalidAlgorithm is returned for a cipher family or variant that is not supported.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")
	// ErrInvalidBlockSize is returned when the block width does not fit the chosen family.
	ErrInvalidBlockSize = errors.New("invalid block size")
	// ErrIO is returned for open, read, write and stat failures on files.
	ErrIO = errors.New("i/o error")
	// ErrBlockSizeMismatch is returned when a buffer handed to a cipher is not exactly one block wide.
	ErrBlockSizeMismatch = errors.New("block size mismatch")
)
