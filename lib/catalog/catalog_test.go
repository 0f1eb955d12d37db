package catalog

import (
	"math/big"
	"testing"

	"github.com/ValentinKolb/bsamples/lib/borsh"
	"github.com/ValentinKolb/bsamples/lib/samples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// produce runs the catalog entry with the given name in strict mode
func produce(t *testing.T, name string) *samples.Category {
	t.Helper()
	e, ok := Lookup(name)
	require.True(t, ok, "category %s is not registered", name)
	p := samples.NewProducer(name, true, nil)
	c, err := e.Produce(p)
	require.NoError(t, err)
	assert.Zero(t, p.Dropped())
	return c
}

// field returns the typed samples of a field
func field[T any](t *testing.T, c *samples.Category, name string) samples.Samples[T] {
	t.Helper()
	raw, ok := c.Samples(name)
	require.True(t, ok, "%s has no field %s", c.Name(), name)
	s, ok := raw.(samples.Samples[T])
	require.True(t, ok, "%s.%s holds %T", c.Name(), name, raw)
	return s
}

// roundTrip decodes every sample of a field with codec and compares it with the value
func roundTrip[T any](t *testing.T, c *samples.Category, name string, codec borsh.ICodec[T]) samples.Samples[T] {
	t.Helper()
	s := field[T](t, c, name)
	for i, sample := range s {
		decoded, err := borsh.Deserialize(codec, sample.Data)
		require.NoError(t, err, "%s.%s[%d]", c.Name(), name, i)
		assert.Equal(t, sample.Value, decoded, "%s.%s[%d]", c.Name(), name, i)
	}
	return s
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{
		"simple", "options", "enums", "data_enums", "vecs", "composites", "tuples", "maps", "sets",
	}, Names())

	_, ok := Lookup("unknown")
	assert.False(t, ok)

	e, _ := Lookup("enums")
	_, err := e.Produce(samples.NewProducer("maps", false, nil))
	assert.Error(t, err, "a producer of another category must be rejected")
}

func TestSampleCounts(t *testing.T) {
	// expected sample count per field, in output order
	testCases := map[string][]int{
		"simple":     {3, 3, 3, 4},
		"options":    {3, 4},
		"enums":      {2, 2},
		"data_enums": {2, 2},
		"vecs":       {4, 3},
		"composites": {3, 3},
		"tuples":     {3, 3, 3, 3, 3, 3, 3},
		"maps":       {3, 3, 3, 2, 3},
		"sets":       {3, 3, 2, 2, 3},
	}

	for _, e := range Entries() {
		t.Run(e.Name(), func(t *testing.T) {
			expected, ok := testCases[e.Name()]
			require.True(t, ok)
			c := produce(t, e.Name())
			require.Len(t, c.Fields(), len(expected))
			for i, f := range c.Fields() {
				s, _ := c.Samples(f)
				assert.Equal(t, expected[i], s.Len(), "%s.%s", e.Name(), f)
			}
		})
	}
}

func TestFieldOrder(t *testing.T) {
	assert.Equal(t, []string{"strings", "u8s", "u128s", "optu8s"}, produce(t, "simple").Fields())
	assert.Equal(t, []string{"collections", "simples"}, produce(t, "data_enums").Fields())
	assert.Equal(t, []string{"vec_opt_u8s", "opt_vec_u8s"}, produce(t, "composites").Fields())
}

func TestRoundTrip(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		c := produce(t, "simple")
		roundTrip(t, c, "strings", borsh.String)
		roundTrip(t, c, "u8s", borsh.U8)
		roundTrip(t, c, "optu8s", optionU8)

		for _, sample := range field[string](t, c, "u128s") {
			decoded, err := borsh.Deserialize(borsh.U128, sample.Data)
			require.NoError(t, err)
			assert.Equal(t, sample.Value, decoded.String())
		}
	})

	t.Run("options", func(t *testing.T) {
		c := produce(t, "options")
		roundTrip(t, c, "strings", optionString)
		roundTrip(t, c, "u8s", optionU8)
	})

	t.Run("enums", func(t *testing.T) {
		c := produce(t, "enums")
		roundTrip(t, c, "directions", directionCodec)
		roundTrip(t, c, "milligrams", milligramsCodec)
	})

	t.Run("data_enums", func(t *testing.T) {
		c := produce(t, "data_enums")
		roundTrip(t, c, "collections", collectionInfoCodec)
		roundTrip(t, c, "simples", simpleCodec)
	})

	t.Run("vecs", func(t *testing.T) {
		c := produce(t, "vecs")
		roundTrip(t, c, "strings", vecString)
		roundTrip(t, c, "u8s", borsh.ByteVec)
	})

	t.Run("composites", func(t *testing.T) {
		c := produce(t, "composites")
		roundTrip(t, c, "vec_opt_u8s", vecOptionU8)
		roundTrip(t, c, "opt_vec_u8s", optionByteVec)
	})

	t.Run("tuples", func(t *testing.T) {
		c := produce(t, "tuples")
		roundTrip(t, c, "u8_u8s", u8U8Tuple)
		roundTrip(t, c, "u8_i16_u32s", u8I16U32Tuple)
		roundTrip(t, c, "u8_strings", u8StringTuple)
		roundTrip(t, c, "string_u16s", stringU16Tuple)
		roundTrip(t, c, "u8_vec_i32s_i8", u8VecI32Tuple)
		roundTrip(t, c, "vec_u8_u8s", vecU8U8Tuple)
		roundTrip(t, c, "vec_u8_strings", vecU8StrTuple)
	})

	t.Run("maps", func(t *testing.T) {
		c := produce(t, "maps")
		roundTrip(t, c, "hash_map_u8_u8s", mapU8U8)
		roundTrip(t, c, "btree_map_u8_u8s", mapU8U8)
		roundTrip(t, c, "hash_map_string_i32s", mapStringI32)
		roundTrip(t, c, "hash_map_string_vec_i8s", mapStringVecI8)
		roundTrip(t, c, "vec_hash_map_string_i64s", vecMapStringI64s)
	})

	t.Run("sets", func(t *testing.T) {
		c := produce(t, "sets")
		roundTrip(t, c, "hash_set_u8s", setU8)
		roundTrip(t, c, "btree_set_u8s", setU8)
		roundTrip(t, c, "hash_set_strings", setString)
		roundTrip(t, c, "vec_hash_set_strings", vecSetOfString)
		roundTrip(t, c, "hash_set_i64s", setI64)
	})
}

func TestOptionU8Samples(t *testing.T) {
	s := roundTrip(t, produce(t, "options"), "u8s", optionU8)
	require.Len(t, s, 4)

	assert.False(t, s[0].Value.IsSome())
	assert.Equal(t, borsh.Bytes{0}, s[0].Data)

	v, ok := s[3].Value.Get()
	require.True(t, ok)
	assert.Equal(t, uint8(255), v)
	assert.Equal(t, borsh.Bytes{1, 255}, s[3].Data)
}

func TestVecStringSamples(t *testing.T) {
	s := roundTrip(t, produce(t, "vecs"), "strings", vecString)
	require.GreaterOrEqual(t, len(s), 3)
	for i, expected := range []int{0, 1, 1} {
		decoded, err := borsh.Deserialize(vecString, s[i].Data)
		require.NoError(t, err)
		assert.Len(t, decoded, expected)
	}
}

func TestEncodings(t *testing.T) {
	t.Run("u128 max", func(t *testing.T) {
		s := field[string](t, produce(t, "simple"), "u128s")
		require.Len(t, s, 3)
		assert.Equal(t, "0", s[0].Value)
		assert.Equal(t, "255", s[1].Value)
		assert.Equal(t, "340282366920938463463374607431768211455", s[2].Value)
		assert.Equal(t, borsh.Bytes{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, s[2].Data)

		v, ok := new(big.Int).SetString(s[2].Value, 10)
		require.True(t, ok)
		assert.Zero(t, v.Cmp(borsh.MaxU128()))
	})

	t.Run("enums encode the variant index", func(t *testing.T) {
		c := produce(t, "enums")
		directions := field[Direction](t, c, "directions")
		assert.Equal(t, borsh.Bytes{0}, directions[0].Data)
		assert.Equal(t, borsh.Bytes{2}, directions[1].Data)

		milligrams := field[Milligrams](t, c, "milligrams")
		assert.Equal(t, borsh.Bytes{0}, milligrams[0].Data)
		assert.Equal(t, borsh.Bytes{1}, milligrams[1].Data)
	})

	t.Run("data enums", func(t *testing.T) {
		c := produce(t, "data_enums")
		simples := field[Simple](t, c, "simples")
		assert.Equal(t, borsh.Bytes{0, 11, 0, 0, 0}, simples[0].Data)
		assert.Equal(t, borsh.Bytes{1, 22, 0, 0, 0}, simples[1].Data)

		collections := field[CollectionInfo](t, c, "collections")
		// tag, "TEST", vec [1 2 3], 32 zero bytes
		assert.Len(t, collections[0].Data, 1+4+4+4+3+whitelistRootSize)
		assert.Equal(t, borsh.Bytes{1, 4}, collections[1].Data)
	})

	t.Run("option of vec", func(t *testing.T) {
		s := field[borsh.Option[borsh.Bytes]](t, produce(t, "composites"), "opt_vec_u8s")
		assert.Equal(t, borsh.Bytes{1, 0, 0, 0, 0}, s[0].Data)
		assert.Equal(t, borsh.Bytes{0}, s[1].Data)
		assert.Equal(t, borsh.Bytes{1, 2, 0, 0, 0, 5, 7}, s[2].Data)
	})

	t.Run("maps are written in key order", func(t *testing.T) {
		s := field[map[uint8]uint8](t, produce(t, "maps"), "hash_map_u8_u8s")
		assert.Equal(t, borsh.Bytes{3, 0, 0, 0, 1, 11, 2, 12, 3, 13}, s[0].Data)
	})

	t.Run("set order does not depend on insertion order", func(t *testing.T) {
		s := field[[]borsh.Set[string]](t, produce(t, "sets"), "vec_hash_set_strings")
		first, err := borsh.Deserialize(vecSetOfString, s[0].Data)
		require.NoError(t, err)
		second, err := borsh.Deserialize(vecSetOfString, s[1].Data)
		require.NoError(t, err)
		assert.Equal(t, first[0], second[1])
		assert.Equal(t, first[1], second[0])
	})
}

func TestTextForms(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected string
	}{
		{"direction", Down, `"Down"`},
		{"milligrams", Kilograms, `"Kilograms"`},
		{"first", First{FirstField: 11}, `{"First":{"first_field":11}}`},
		{"second", Second{SecondField: 22}, `{"Second":{"second_field":22}}`},
		{"v2", CollectionInfoV2{CollectionMint: 4}, `{"V2":{"collection_mint":4}}`},
		{
			"v1",
			CollectionInfoV1{Symbol: "TEST", VerifiedCreators: borsh.Bytes{1, 2, 3}, WhitelistRoot: borsh.Bytes{0, 0}},
			`{"V1":{"symbol":"TEST","verified_creators":[1,2,3],"whitelist_root":[0,0]}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := borsh.EncodeJSON(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(out))
		})
	}

	assert.Equal(t, "Direction(9)", Direction(9).String())
	assert.Equal(t, "Milligrams(7)", Milligrams(7).String())
}

func TestDeterministic(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			first, err := borsh.EncodeJSON(produce(t, name))
			require.NoError(t, err)
			second, err := borsh.EncodeJSON(produce(t, name))
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}
