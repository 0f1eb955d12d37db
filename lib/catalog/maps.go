package catalog

import (
	"math"

	"github.com/ValentinKolb/bsamples/lib/borsh"
	"github.com/ValentinKolb/bsamples/lib/samples"
)

// HashMap and BTreeMap share one encoding since entries are always written in key order
var (
	mapU8U8          = borsh.Map(borsh.U8, borsh.U8)
	mapStringI32     = borsh.Map(borsh.String, borsh.I32)
	mapStringVecI8   = borsh.Map(borsh.String, borsh.Vec(borsh.I8))
	vecMapStringI64s = borsh.Vec(borsh.Map(borsh.String, borsh.I64))
)

func produceMaps(p *samples.Producer) (*samples.Category, error) {
	hashMapU8U8s, err := samples.Produce(p, "hash_map_u8_u8s", mapU8U8,
		map[uint8]uint8{1: 11, 2: 12, 3: 13},
		map[uint8]uint8{11: 111, 22: 122, 33: 133},
		map[uint8]uint8{111: 110, 222: 220, 255: 250},
	)
	if err != nil {
		return nil, err
	}
	btreeMapU8U8s, err := samples.Produce(p, "btree_map_u8_u8s", mapU8U8,
		map[uint8]uint8{},
		map[uint8]uint8{1: 11, 2: 12, 3: 13},
		map[uint8]uint8{111: 110, 222: 220, 255: 250},
	)
	if err != nil {
		return nil, err
	}
	hashMapStringI32s, err := samples.Produce(p, "hash_map_string_i32s", mapStringI32,
		map[string]int32{},
		map[string]int32{"Uno": 1, "Dos": 2, "Tres": 3},
		map[string]int32{"min": math.MinInt32, "max": math.MaxInt32},
	)
	if err != nil {
		return nil, err
	}
	hashMapStringVecI8s, err := samples.Produce(p, "hash_map_string_vec_i8s", mapStringVecI8,
		map[string][]int8{},
		map[string][]int8{"empty": {}, "neg": {-1, math.MinInt8}, "pos": {1, math.MaxInt8}},
	)
	if err != nil {
		return nil, err
	}
	// i64 values stay within the exact integer range of JSON numbers
	vecHashMapStringI64s, err := samples.Produce(p, "vec_hash_map_string_i64s", vecMapStringI64s,
		[]map[string]int64{},
		[]map[string]int64{{}},
		[]map[string]int64{{"Uno": 1, "Dos": 2}, {"Eins": -1}},
	)
	if err != nil {
		return nil, err
	}

	return samples.NewCategory(p.Category()).
		With("hash_map_u8_u8s", hashMapU8U8s).
		With("btree_map_u8_u8s", btreeMapU8U8s).
		With("hash_map_string_i32s", hashMapStringI32s).
		With("hash_map_string_vec_i8s", hashMapStringVecI8s).
		With("vec_hash_map_string_i64s", vecHashMapStringI64s), nil
}
