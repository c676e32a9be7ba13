package guid

import (
	"github.com/google/uuid"
)

// GUID identifies one discovery-visible participant. It is a fixed-size
// value type with structural equality, safe for use as a map key. A GUID is
// never mutated after it is obtained.
type GUID [16]byte

// Zero is the all-zero GUID. It never identifies a real participant.
var Zero GUID

// New returns a fresh random GUID.
func New() GUID {
	return GUID(uuid.New())
}

// Parse parses the canonical textual form produced by String.
func Parse(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Zero, err
	}
	return GUID(u), nil
}

// FromBytes builds a GUID from a 16-byte slice.
func FromBytes(b []byte) (GUID, error) {
	u, err := uuid.FromBytes(b)
	if err != nil {
		return Zero, err
	}
	return GUID(u), nil
}

func (g GUID) String() string {
	return uuid.UUID(g).String()
}

// Bytes returns a copy of the raw 16 bytes.
func (g GUID) Bytes() []byte {
	b := make([]byte, len(g))
	copy(b, g[:])
	return b
}

func (g GUID) IsZero() bool {
	return g == Zero
}
