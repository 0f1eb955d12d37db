package samples

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ValentinKolb/bsamples/lib/borsh"
	"github.com/VictoriaMetrics/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestProducePreservesOrder(t *testing.T) {
	p := NewProducer("simple", false, nil)

	s, err := Produce(p, "u8s", borsh.U8, 0, 1, 255)
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	assert.Equal(t, []uint8{0, 1, 255}, s.Values())
	assert.Equal(t, borsh.Bytes{0}, s[0].Data)
	assert.Equal(t, borsh.Bytes{255}, s[2].Data)
	assert.Equal(t, 3, p.Produced())
	assert.Equal(t, 0, p.Dropped())
}

func TestProduceDropsFailingValues(t *testing.T) {
	set := metrics.NewSet()
	p := NewProducer("simple", false, set)

	s, err := ProduceStringified(p, "u128s", borsh.U128,
		big.NewInt(0),
		big.NewInt(-1),
		borsh.MaxU128(),
		new(big.Int).Add(borsh.MaxU128(), big.NewInt(1)),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "340282366920938463463374607431768211455"}, s.Values())
	assert.Equal(t, 2, p.Produced())
	assert.Equal(t, 2, p.Dropped())

	var buf bytes.Buffer
	p.WriteMetrics(&buf)
	assert.Contains(t, buf.String(), `bsamples_dropped_total{category="simple",field="u128s"} 2`)
	assert.Contains(t, buf.String(), `bsamples_samples_total{category="simple",field="u128s"} 2`)
}

func TestProduceStrict(t *testing.T) {
	p := NewProducer("vecs", true, nil)

	_, err := Produce(p, "roots", borsh.FixedBytes(2), borsh.Bytes{1, 2}, borsh.Bytes{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vecs.roots: value 1 failed to encode")
	assert.Equal(t, 0, p.Dropped())
}

func TestProduceEmptyInput(t *testing.T) {
	p := NewProducer("vecs", false, nil)

	s, err := Produce[string](p, "strings", borsh.String)
	require.NoError(t, err)
	assert.NotNil(t, s)
	assert.Equal(t, 0, s.Len())
}

func newTestCategory(t *testing.T) *Category {
	t.Helper()
	p := NewProducer("options", false, nil)

	strs, err := Produce(p, "strings", borsh.OptionOf(borsh.String), borsh.None[string](), borsh.Some("Bob & Co"))
	require.NoError(t, err)
	u8s, err := Produce(p, "u8s", borsh.OptionOf(borsh.U8), borsh.None[uint8](), borsh.Some[uint8](255))
	require.NoError(t, err)

	return NewCategory("options").With("strings", strs).With("u8s", u8s)
}

func TestCategoryOrder(t *testing.T) {
	c := newTestCategory(t)

	assert.Equal(t, "options", c.Name())
	assert.Equal(t, []string{"strings", "u8s"}, c.Fields())
	assert.Equal(t, 4, c.Count())

	s, ok := c.Samples("u8s")
	require.True(t, ok)
	assert.Equal(t, 2, s.Len())

	_, ok = c.Samples("missing")
	assert.False(t, ok)

	// replacing a field keeps its position
	c.With("strings", Samples[string]{})
	assert.Equal(t, []string{"strings", "u8s"}, c.Fields())
	assert.Equal(t, 2, c.Count())
}

func TestCategoryJSON(t *testing.T) {
	out, err := json.Marshal(newTestCategory(t))
	require.NoError(t, err)

	expected := `{"strings":[{"value":null,"data":[0]},{"value":"Bob & Co","data":[1,8,0,0,0,66,111,98,32,38,32,67,111]}],` +
		`"u8s":[{"value":null,"data":[0]},{"value":255,"data":[1,255]}]}`
	assert.JSONEq(t, expected, string(out))
}

func TestCategoryYAML(t *testing.T) {
	out, err := yaml.Marshal(newTestCategory(t))
	require.NoError(t, err)

	var decoded yaml.Node
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	mapping := decoded.Content[0]
	require.Equal(t, yaml.MappingNode, mapping.Kind)
	assert.Equal(t, "strings", mapping.Content[0].Value)
	assert.Equal(t, "u8s", mapping.Content[2].Value)

	var generic map[string][]map[string]any
	require.NoError(t, yaml.Unmarshal(out, &generic))
	assert.Nil(t, generic["u8s"][0]["value"])
	assert.Equal(t, 255, generic["u8s"][1]["value"])
	assert.Equal(t, []any{1, 255}, generic["u8s"][1]["data"])
}
