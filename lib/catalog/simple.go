package catalog

import (
	"math/big"

	"github.com/ValentinKolb/bsamples/lib/borsh"
	"github.com/ValentinKolb/bsamples/lib/samples"
)

var optionU8 = borsh.OptionOf(borsh.U8)

func produceSimple(p *samples.Producer) (*samples.Category, error) {
	strs, err := samples.Produce(p, "strings", borsh.String, "", "Bob", "Harry and Bob")
	if err != nil {
		return nil, err
	}
	u8s, err := samples.Produce[uint8](p, "u8s", borsh.U8, 0, 1, 255)
	if err != nil {
		return nil, err
	}
	// u128 has no native text form, the decimal string is kept instead
	u128s, err := samples.ProduceStringified(p, "u128s", borsh.U128, big.NewInt(0), big.NewInt(255), borsh.MaxU128())
	if err != nil {
		return nil, err
	}
	optu8s, err := samples.Produce(p, "optu8s", optionU8,
		borsh.None[uint8](), borsh.Some[uint8](0), borsh.Some[uint8](1), borsh.Some[uint8](255))
	if err != nil {
		return nil, err
	}

	return samples.NewCategory(p.Category()).
		With("strings", strs).
		With("u8s", u8s).
		With("u128s", u128s).
		With("optu8s", optu8s), nil
}
