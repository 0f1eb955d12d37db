package catalog

import (
	"github.com/ValentinKolb/bsamples/lib/borsh"
	"github.com/ValentinKolb/bsamples/lib/samples"
)

var optionString = borsh.OptionOf(borsh.String)

func produceOptions(p *samples.Producer) (*samples.Category, error) {
	strs, err := samples.Produce(p, "strings", optionString,
		borsh.None[string](), borsh.Some("Bob"), borsh.Some("Harry and Luise"))
	if err != nil {
		return nil, err
	}
	u8s, err := samples.Produce(p, "u8s", optionU8,
		borsh.None[uint8](), borsh.Some[uint8](0), borsh.Some[uint8](1), borsh.Some[uint8](255))
	if err != nil {
		return nil, err
	}

	return samples.NewCategory(p.Category()).
		With("strings", strs).
		With("u8s", u8s), nil
}
