package samples

import (
	"bytes"

	"github.com/ValentinKolb/bsamples/lib/borsh"
	"github.com/elliotchance/orderedmap/v2"
	"gopkg.in/yaml.v3"
)

// Category is a named record of sample sequences. Fields keep the order in
// which they were added, which is also the order they are rendered in.
type Category struct {
	name   string
	fields *orderedmap.OrderedMap[string, ISamples]
}

// NewCategory creates an empty category record
func NewCategory(name string) *Category {
	return &Category{
		name:   name,
		fields: orderedmap.NewOrderedMap[string, ISamples](),
	}
}

// Name returns the category name
func (c *Category) Name() string {
	return c.name
}

// With adds a field. Setting an existing field replaces its samples but keeps its position.
func (c *Category) With(field string, s ISamples) *Category {
	c.fields.Set(field, s)
	return c
}

// Fields returns the field names in order
func (c *Category) Fields() []string {
	return c.fields.Keys()
}

// Samples returns the samples of a field
func (c *Category) Samples(field string) (ISamples, bool) {
	return c.fields.Get(field)
}

// Count returns the total number of samples over all fields
func (c *Category) Count() int {
	total := 0
	for el := c.fields.Front(); el != nil; el = el.Next() {
		total += el.Value.Len()
	}
	return total
}

// --------------------------------------------------------------------------
// Text forms
// --------------------------------------------------------------------------

func (c *Category) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for el := c.fields.Front(); el != nil; el = el.Next() {
		if el != c.fields.Front() {
			buf.WriteByte(',')
		}
		key, err := borsh.EncodeJSON(el.Key)
		if err != nil {
			return nil, err
		}
		value, err := borsh.EncodeJSON(el.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *Category) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for el := c.fields.Front(); el != nil; el = el.Next() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: el.Key}
		value := &yaml.Node{}
		if err := value.Encode(el.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}
