package samples

import (
	"fmt"
	"io"

	"github.com/ValentinKolb/bsamples/lib/borsh"
	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/pkg/errors"
)

var Logger = logger.GetLogger("samples")

// Producer turns values of one category into samples. Values that fail to
// encode are dropped and counted, in strict mode they abort the run instead.
type Producer struct {
	category string
	strict   bool
	set      *metrics.Set
	dropped  int
	produced int
}

// NewProducer creates a producer for the named category. Counters are
// registered in set, a nil set creates a private one.
func NewProducer(category string, strict bool, set *metrics.Set) *Producer {
	if set == nil {
		set = metrics.NewSet()
	}
	return &Producer{
		category: category,
		strict:   strict,
		set:      set,
	}
}

// Category returns the name of the category the producer works for
func (p *Producer) Category() string {
	return p.category
}

// Produced returns the number of samples produced so far
func (p *Producer) Produced() int {
	return p.produced
}

// Dropped returns the number of values dropped because they failed to encode
func (p *Producer) Dropped() int {
	return p.dropped
}

// WriteMetrics writes the counters of the producer's metrics set in Prometheus text format
func (p *Producer) WriteMetrics(w io.Writer) {
	p.set.WritePrometheus(w)
}

// --------------------------------------------------------------------------
// Sample production
// --------------------------------------------------------------------------

// Produce encodes each value with c and pairs it with its encoding. The order
// of xs is preserved, values that fail to encode are left out.
func Produce[T any](p *Producer, field string, c borsh.ICodec[T], xs ...T) (Samples[T], error) {
	out := make(Samples[T], 0, len(xs))
	for i, x := range xs {
		data, err := borsh.Serialize(c, x)
		if err != nil {
			if err := p.drop(field, i, err); err != nil {
				return nil, err
			}
			continue
		}
		out = append(out, NewSample(x, data))
		p.count(field)
	}
	return out, nil
}

// ProduceStringified works like Produce but keeps the display text of each
// value instead of the value itself. It is used for values the text format
// cannot represent natively (e.g. 128 bit integers).
func ProduceStringified[T fmt.Stringer](p *Producer, field string, c borsh.ICodec[T], xs ...T) (Samples[string], error) {
	out := make(Samples[string], 0, len(xs))
	for i, x := range xs {
		data, err := borsh.Serialize(c, x)
		if err != nil {
			if err := p.drop(field, i, err); err != nil {
				return nil, err
			}
			continue
		}
		out = append(out, NewSample(x.String(), data))
		p.count(field)
	}
	return out, nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func (p *Producer) count(field string) {
	p.produced++
	p.set.GetOrCreateCounter(p.metricName("bsamples_samples_total", field)).Inc()
}

// drop records a value that failed to encode and returns an error in strict mode
func (p *Producer) drop(field string, index int, cause error) error {
	if p.strict {
		return errors.Wrapf(cause, "%s.%s: value %d failed to encode", p.category, field, index)
	}
	p.dropped++
	p.set.GetOrCreateCounter(p.metricName("bsamples_dropped_total", field)).Inc()
	Logger.Warningf("%s.%s: dropping value %d: %v", p.category, field, index, cause)
	return nil
}

func (p *Producer) metricName(name, field string) string {
	return fmt.Sprintf(`%s{category=%q,field=%q}`, name, p.category, field)
}
