package samples

import "github.com/ValentinKolb/bsamples/lib/borsh"

// Sample pairs a value with its canonical Borsh encoding
type Sample[T any] struct {
	Value T           `json:"value" yaml:"value"`
	Data  borsh.Bytes `json:"data" yaml:"data"`
}

// NewSample creates a new sample
func NewSample[T any](value T, data []byte) Sample[T] {
	return Sample[T]{Value: value, Data: data}
}

// ISamples is the type independent view of a sample sequence
type ISamples interface {
	// Len returns the number of samples
	Len() int
}

// Samples is an ordered sequence of samples of one value type
type Samples[T any] []Sample[T]

func (s Samples[T]) Len() int {
	return len(s)
}

// Values returns the values of all samples in order
func (s Samples[T]) Values() []T {
	out := make([]T, len(s))
	for i, sample := range s {
		out[i] = sample.Value
	}
	return out
}
