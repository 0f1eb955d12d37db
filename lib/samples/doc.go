// Package samples pairs fixture values with their canonical Borsh encoding and
// groups them into named category records.
//
// Key Components:
//
//   - Sample / Samples: one (value, data) pair and an ordered sequence of them
//   - Produce / ProduceStringified: encode a sequence of values with an ICodec.
//     Values that fail to encode are dropped, logged and counted; a strict
//     Producer returns the encoding error instead
//   - Producer: carries the category name, strict mode and the VictoriaMetrics
//     set with the bsamples_samples_total and bsamples_dropped_total counters
//   - Category: an insertion ordered record from field name to Samples, rendered
//     as a JSON object or YAML mapping in field order
//
// Usage:
//
//	p := samples.NewProducer("options", false, nil)
//	u8s, err := samples.Produce(p, "u8s", borsh.OptionOf(borsh.U8),
//		borsh.None[uint8](), borsh.Some[uint8](0), borsh.Some[uint8](255))
//	category := samples.NewCategory("options").With("u8s", u8s)
package samples
