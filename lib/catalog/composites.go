package catalog

import (
	"github.com/ValentinKolb/bsamples/lib/borsh"
	"github.com/ValentinKolb/bsamples/lib/samples"
)

var (
	vecOptionU8   = borsh.Vec(optionU8)
	optionByteVec = borsh.OptionOf(borsh.ByteVec)
)

func produceComposites(p *samples.Producer) (*samples.Category, error) {
	none := borsh.None[uint8]()
	vecOptU8s, err := samples.Produce(p, "vec_opt_u8s", vecOptionU8,
		[]borsh.Option[uint8]{},
		[]borsh.Option[uint8]{none},
		[]borsh.Option[uint8]{none, borsh.Some[uint8](5), borsh.Some[uint8](7)},
	)
	if err != nil {
		return nil, err
	}
	optVecU8s, err := samples.Produce(p, "opt_vec_u8s", optionByteVec,
		borsh.Some(borsh.Bytes{}),
		borsh.None[borsh.Bytes](),
		borsh.Some(borsh.Bytes{5, 7}),
	)
	if err != nil {
		return nil, err
	}

	return samples.NewCategory(p.Category()).
		With("vec_opt_u8s", vecOptU8s).
		With("opt_vec_u8s", optVecU8s), nil
}
