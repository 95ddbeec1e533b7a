package catalog

import (
	"fmt"
	"strings"
)

// Kind partitions catalog entries into beats, artists and genres.
type Kind int

// The zero Kind is invalid so that a missing kind in a catalog file is rejected.
const (
	KindBeat Kind = iota + 1
	KindArtist
	KindGenre
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindBeat, KindArtist, KindGenre}

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBeat:
		return "beat"
	case KindArtist:
		return "artist"
	case KindGenre:
		return "genre"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= KindBeat && k <= KindGenre
}

// ParseKind parses a wire name such as "beat". Matching ignores case and surrounding space.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beat":
		return KindBeat, nil
	case "artist":
		return KindArtist, nil
	case "genre":
		return KindGenre, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
