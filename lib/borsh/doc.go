// Package borsh implements a type-directed codec for the Borsh binary format.
// Values are plain Go types; the shape of the encoding is described by
// composing ICodec values, so one Go type can be encoded in more than one way
// (for example a map of u8 keys can be written as a HashMap or a BTreeMap).
//
// Encoding Rules:
//
//   - integers: little-endian, fixed width (1, 2, 4, 8 or 16 bytes)
//   - bool: a single byte, 0 or 1
//   - string: u32 byte length followed by the UTF-8 bytes
//   - Vec<T>: u32 element count followed by the elements
//   - [T; N]: N elements without a prefix
//   - Option<T>: 0 for None, 1 followed by the value for Some
//   - tuples and structs: fields in declaration order
//   - scalar and data enums: u8 variant index, then the variant fields
//   - maps and sets: u32 count followed by the entries in ascending key order
//
// Key Components:
//
//   - ICodec: the interface every codec satisfies (Encode / Decode)
//   - Writer / Reader: the pooled output buffer and the bounds checked input cursor
//   - Serialize / Deserialize: top level helpers; Deserialize rejects trailing bytes
//   - Option, Tuple2, Tuple3, Set, Bytes: value types whose text form matches the
//     representation used by the fixture consumers (null for None, arrays for tuples
//     and sets, numbers for bytes)
//
// Usage:
//
//	codec := borsh.Vec(borsh.OptionOf(borsh.U8))
//	data, err := borsh.Serialize(codec, []borsh.Option[uint8]{borsh.None[uint8](), borsh.Some[uint8](5)})
//	// data == []byte{2, 0, 0, 0, 0, 1, 5}
//	values, err := borsh.Deserialize(codec, data)
package borsh
