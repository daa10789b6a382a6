package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Kind of waste picked up on a collection day. The zero value is invalid.
type WasteType int

const (
	WasteSelective WasteType = iota + 1
	WasteGreen
	WasteMixed
	WasteGlass
)

// Every waste type in legend order
var WasteTypes = []WasteType{WasteSelective, WasteGreen, WasteMixed, WasteGlass}

// Hungarian name as it appears in the schedule tables and in UIDs
func (t WasteType) String() string {
	switch t {
	case WasteSelective:
		return "Szelektív"
	case WasteGreen:
		return "Zöldhulladék"
	case WasteMixed:
		return "Vegyes"
	case WasteGlass:
		return "Üveg"
	default:
		return fmt.Sprintf("WasteType(%d)", int(t))
	}
}

func (t WasteType) Valid() bool {
	return t >= WasteSelective && t <= WasteGlass
}

// Parse a Hungarian waste type name. The input is NFC normalized first so
// decomposed accents ("U" + combining diaeresis) still match.
func ParseWasteType(s string) (WasteType, error) {
	name := norm.NFC.String(strings.TrimSpace(s))
	for _, t := range WasteTypes {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown waste type %q", s)
}

func (t WasteType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid waste type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *WasteType) UnmarshalText(text []byte) error {
	parsed, err := ParseWasteType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
