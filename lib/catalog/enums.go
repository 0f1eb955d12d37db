package catalog

import (
	"fmt"

	"github.com/ValentinKolb/bsamples/lib/borsh"
	"github.com/ValentinKolb/bsamples/lib/samples"
)

// --------------------------------------------------------------------------
// Direction
// --------------------------------------------------------------------------

// Direction is a scalar enum with implicit discriminants
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

var directionNames = [...]string{"Up", "Right", "Down", "Left"}

var directionCodec = borsh.ScalarEnum(Up, Right, Down, Left)

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return borsh.EncodeJSON(d.String())
}

func (d Direction) MarshalYAML() (any, error) {
	return d.String(), nil
}

// --------------------------------------------------------------------------
// Milligrams
// --------------------------------------------------------------------------

// Milligrams is a scalar enum with explicit discriminants. Only the variant
// position is encoded, Kilograms is written as 1.
type Milligrams uint32

const (
	Grams     Milligrams = 1000
	Kilograms Milligrams = 1000000
)

var milligramsCodec = borsh.ScalarEnum(Grams, Kilograms)

func (m Milligrams) String() string {
	switch m {
	case Grams:
		return "Grams"
	case Kilograms:
		return "Kilograms"
	default:
		return fmt.Sprintf("Milligrams(%d)", uint32(m))
	}
}

func (m Milligrams) MarshalJSON() ([]byte, error) {
	return borsh.EncodeJSON(m.String())
}

func (m Milligrams) MarshalYAML() (any, error) {
	return m.String(), nil
}

func produceEnums(p *samples.Producer) (*samples.Category, error) {
	directions, err := samples.Produce(p, "directions", directionCodec, Up, Down)
	if err != nil {
		return nil, err
	}
	milligrams, err := samples.Produce(p, "milligrams", milligramsCodec, Grams, Kilograms)
	if err != nil {
		return nil, err
	}

	return samples.NewCategory(p.Category()).
		With("directions", directions).
		With("milligrams", milligrams), nil
}
