package catalog

import (
	"github.com/ValentinKolb/bsamples/lib/borsh"
	"github.com/ValentinKolb/bsamples/lib/samples"
)

var (
	setU8          = borsh.SetOf(borsh.U8)
	setString      = borsh.SetOf(borsh.String)
	setI64         = borsh.SetOf(borsh.I64)
	vecSetOfString = borsh.Vec(setString)
)

// maxSafeInteger is the largest integer JSON consumers read without losing precision
const maxSafeInteger = 1<<53 - 1

func produceSets(p *samples.Producer) (*samples.Category, error) {
	u8Sets := []borsh.Set[uint8]{
		borsh.NewSet[uint8](1, 2, 3),
		borsh.NewSet[uint8](11, 22, 33),
		borsh.NewSet[uint8](111, 222, 255),
	}
	hashSetU8s, err := samples.Produce(p, "hash_set_u8s", setU8, u8Sets...)
	if err != nil {
		return nil, err
	}
	btreeSetU8s, err := samples.Produce(p, "btree_set_u8s", setU8, u8Sets...)
	if err != nil {
		return nil, err
	}

	s1 := borsh.NewSet("Uno", "Dos", "Tres")
	s2 := borsh.NewSet("Eins", "Zwei", "Drei", "Vier")
	hashSetStrings, err := samples.Produce(p, "hash_set_strings", setString, s1, s2)
	if err != nil {
		return nil, err
	}
	vecHashSetStrings, err := samples.Produce(p, "vec_hash_set_strings", vecSetOfString,
		[]borsh.Set[string]{s1, s2},
		[]borsh.Set[string]{s2, s1},
	)
	if err != nil {
		return nil, err
	}
	hashSetI64s, err := samples.Produce(p, "hash_set_i64s", setI64,
		borsh.NewSet[int64](),
		borsh.NewSet[int64](-1, 0, 1),
		borsh.NewSet[int64](-maxSafeInteger, maxSafeInteger),
	)
	if err != nil {
		return nil, err
	}

	return samples.NewCategory(p.Category()).
		With("hash_set_u8s", hashSetU8s).
		With("btree_set_u8s", btreeSetU8s).
		With("hash_set_strings", hashSetStrings).
		With("vec_hash_set_strings", vecHashSetStrings).
		With("hash_set_i64s", hashSetI64s), nil
}
