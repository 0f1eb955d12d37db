package catalog

import (
	"math"

	"github.com/ValentinKolb/bsamples/lib/borsh"
	"github.com/ValentinKolb/bsamples/lib/samples"
)

var (
	u8U8Tuple      = borsh.Tuple2Of(borsh.U8, borsh.U8)
	u8I16U32Tuple  = borsh.Tuple3Of(borsh.U8, borsh.I16, borsh.U32)
	u8StringTuple  = borsh.Tuple2Of(borsh.U8, borsh.String)
	stringU16Tuple = borsh.Tuple2Of(borsh.String, borsh.U16)
	u8VecI32Tuple  = borsh.Tuple3Of(borsh.U8, borsh.Vec(borsh.I32), borsh.I8)
	vecU8U8Tuple   = borsh.Vec(u8U8Tuple)
	vecU8StrTuple  = borsh.Vec(u8StringTuple)
)

func produceTuples(p *samples.Producer) (*samples.Category, error) {
	u8U8s, err := samples.Produce(p, "u8_u8s", u8U8Tuple,
		borsh.T2[uint8, uint8](1, 1), borsh.T2[uint8, uint8](1, 2), borsh.T2[uint8, uint8](3, 3))
	if err != nil {
		return nil, err
	}
	u8I16U32s, err := samples.Produce(p, "u8_i16_u32s", u8I16U32Tuple,
		borsh.T3[uint8, int16, uint32](1, 2, 3),
		borsh.T3[uint8, int16, uint32](9, -9, 22),
		borsh.T3[uint8, int16, uint32](0, -5, 0),
	)
	if err != nil {
		return nil, err
	}
	u8Strings, err := samples.Produce(p, "u8_strings", u8StringTuple,
		borsh.T2[uint8](1, ""), borsh.T2[uint8](2, "Bob"), borsh.T2[uint8](255, "Harry and Luise"))
	if err != nil {
		return nil, err
	}
	stringU16s, err := samples.Produce(p, "string_u16s", stringU16Tuple,
		borsh.T2[string, uint16]("", 0),
		borsh.T2[string, uint16]("Bob", 1),
		borsh.T2[string, uint16]("Harry and Luise", math.MaxUint16),
	)
	if err != nil {
		return nil, err
	}
	u8VecI32sI8, err := samples.Produce(p, "u8_vec_i32s_i8", u8VecI32Tuple,
		borsh.T3[uint8, []int32, int8](0, []int32{}, 0),
		borsh.T3[uint8, []int32, int8](1, []int32{-1, 2}, -3),
		borsh.T3[uint8, []int32, int8](255, []int32{math.MaxInt32, math.MinInt32}, math.MaxInt8),
	)
	if err != nil {
		return nil, err
	}
	vecU8U8s, err := samples.Produce(p, "vec_u8_u8s", vecU8U8Tuple,
		[]borsh.Tuple2[uint8, uint8]{},
		[]borsh.Tuple2[uint8, uint8]{{First: 1, Second: 1}},
		[]borsh.Tuple2[uint8, uint8]{{First: 1, Second: 2}, {First: 3, Second: 4}},
	)
	if err != nil {
		return nil, err
	}
	vecU8Strings, err := samples.Produce(p, "vec_u8_strings", vecU8StrTuple,
		[]borsh.Tuple2[uint8, string]{},
		[]borsh.Tuple2[uint8, string]{{First: 1, Second: "Bob"}},
		[]borsh.Tuple2[uint8, string]{{First: 1, Second: "Bob"}, {First: 2, Second: "Harry and Luise"}},
	)
	if err != nil {
		return nil, err
	}

	return samples.NewCategory(p.Category()).
		With("u8_u8s", u8U8s).
		With("u8_i16_u32s", u8I16U32s).
		With("u8_strings", u8Strings).
		With("string_u16s", stringU16s).
		With("u8_vec_i32s_i8", u8VecI32sI8).
		With("vec_u8_u8s", vecU8U8s).
		With("vec_u8_strings", vecU8Strings), nil
}
