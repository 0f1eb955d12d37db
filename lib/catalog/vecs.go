package catalog

import (
	"github.com/ValentinKolb/bsamples/lib/borsh"
	"github.com/ValentinKolb/bsamples/lib/samples"
)

var vecString = borsh.Vec(borsh.String)

func produceVecs(p *samples.Producer) (*samples.Category, error) {
	strs, err := samples.Produce(p, "strings", vecString,
		[]string{}, []string{""}, []string{"Bob"}, []string{"Bob", "Harry and Luise"})
	if err != nil {
		return nil, err
	}
	u8s, err := samples.Produce(p, "u8s", borsh.ByteVec,
		borsh.Bytes{}, borsh.Bytes{0}, borsh.Bytes{0, 1, 255})
	if err != nil {
		return nil, err
	}

	return samples.NewCategory(p.Category()).
		With("strings", strs).
		With("u8s", u8s), nil
}
