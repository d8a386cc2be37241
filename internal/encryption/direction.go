package encryption

// Direction selects the forward or the inverse block transform.
type Direction byte

const (
	// Encrypt applies the forward block transform.
	Encrypt Direction = iota
	// Decrypt applies the inverse block transform.
	Decrypt
)

func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}

	return "encrypt"
}
