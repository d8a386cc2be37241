package encryption

import (
	"fmt"
	"strings"
)

// Family is a cipher family as named on the command line.
type Family byte

const (
	// FamilyBlowfish is Blowfish, 64-bit blocks.
	FamilyBlowfish Family = iota + 1
	// FamilyTwofish is Twofish, 128-bit blocks.
	FamilyTwofish
	// FamilyThreefish is Threefish, 256, 512 or 1024-bit blocks.
	FamilyThreefish
)

// ParseFamily resolves a family name or one of its short aliases.
// Leading dashes and case are ignored, so "--TF" selects Threefish.
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(strings.TrimLeft(strings.TrimSpace(name), "-")) {
	case "blowfish", "bf":
		return FamilyBlowfish, nil
	case "twofish", "tw":
		return FamilyTwofish, nil
	case "threefish", "tf":
		return FamilyThreefish, nil
	default:
		return 0, fmt.Errorf("%w: %q (want blowfish, twofish or threefish)", ErrInvalidAlgorithm, name)
	}
}

func (f Family) String() string {
	switch f {
	case FamilyBlowfish:
		return "blowfish"
	case FamilyTwofish:
		return "twofish"
	case FamilyThreefish:
		return "threefish"
	default:
		return fmt.Sprintf("family(%d)", byte(f))
	}
}

// Algorithm is one concrete cipher variant. Each variant has a single block width.
type Algorithm byte

const (
	// Blowfish with a 56-byte key.
	Blowfish Algorithm = iota + 1
	// Twofish with a 32-byte key.
	Twofish
	// Threefish256 with a 32-byte key.
	Threefish256
	// Threefish512 with a 64-byte key.
	Threefish512
	// Threefish1024 with a 128-byte key.
	Threefish1024
)

// Algorithms lists every supported variant.
//
//nolint:gochecknoglobals
var Algorithms = []Algorithm{Blowfish, Twofish, Threefish256, Threefish512, Threefish1024}

// NewAlgorithm selects the variant of family for the requested block width.
// Blowfish and Twofish have a fixed width and ignore blockWidth.
// Threefish accepts the width either in bytes (32, 64, 128) or in bits (256, 512, 1024).
func NewAlgorithm(family Family, blockWidth int) (Algorithm, error) {
	switch family {
	case FamilyBlowfish:
		return Blowfish, nil
	case FamilyTwofish:
		return Twofish, nil
	case FamilyThreefish:
		switch blockWidth {
		case 32, 256:
			return Threefish256, nil
		case 64, 512:
			return Threefish512, nil
		case 128, 1024:
			return Threefish1024, nil
		default:
			return 0, fmt.Errorf("%w: threefish supports 32, 64 or 128 bytes, got %d", ErrInvalidBlockSize, blockWidth)
		}
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidAlgorithm, family)
	}
}

// Family returns the family the variant belongs to.
func (a Algorithm) Family() Family {
	switch a {
	case Blowfish:
		return FamilyBlowfish
	case Twofish:
		return FamilyTwofish
	case Threefish256, Threefish512, Threefish1024:
		return FamilyThreefish
	default:
		return 0
	}
}

// BlockSize returns the block width in bytes, or 0 for an unknown variant.
func (a Algorithm) BlockSize() int {
	switch a {
	case Blowfish:
		return 8
	case Twofish:
		return 16
	case Threefish256:
		return 32
	case Threefish512:
		return 64
	case Threefish1024:
		return 128
	default:
		return 0
	}
}

// KeySize returns the length of the derived key in bytes.
func (a Algorithm) KeySize() int {
	switch a {
	case Blowfish:
		return blowfishKeySize
	case Twofish, Threefish256:
		return 32
	case Threefish512:
		return 64
	case Threefish1024:
		return 128
	default:
		return 0
	}
}

func (a Algorithm) String() string {
	switch a {
	case Blowfish:
		return "blowfish"
	case Twofish:
		return "twofish"
	case Threefish256:
		return "threefish-256"
	case Threefish512:
		return "threefish-512"
	case Threefish1024:
		return "threefish-1024"
	default:
		return fmt.Sprintf("algorithm(%d)", byte(a))
	}
}
