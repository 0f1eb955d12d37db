// Package render converts category records into the structured text stored in
// fixture files. It defines a common interface and one implementation per
// output format.
//
// Key Components:
//
//   - IFixtureRenderer: Core interface that all renderers must satisfy.
//
//   - jsonRendererImpl: Pretty printed JSON with two space indentation and without
//     HTML escaping, the format read by the compatibility test suites.
//
//   - yamlRendererImpl: YAML with two space indentation, useful for reviewing
//     fixtures by hand.
//
// Both renderers are deterministic: rendering the same record twice yields
// identical bytes, fields appear in declaration order and maps and sets in
// ascending key order.
//
// Thread Safety:
//
//	All renderer implementations are stateless and safe for concurrent use.
//
// Usage:
//
//	r, err := render.NewRenderer(common.FormatJSON)
//	data, err := r.Render(category)
package render
