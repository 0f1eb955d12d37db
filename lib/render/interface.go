package render

import (
	"github.com/ValentinKolb/bsamples/lib/common"
	"github.com/ValentinKolb/bsamples/lib/samples"
	"github.com/pkg/errors"
)

// IFixtureRenderer is the interface for all fixture file renderers
type IFixtureRenderer interface {
	// Render converts a category record into the content of its fixture file
	// It returns the rendered bytes and an error if any
	Render(c *samples.Category) ([]byte, error)
	// Format returns the output format the renderer produces
	Format() common.OutputFormat
}

// NewRenderer creates the renderer for the given output format
func NewRenderer(format common.OutputFormat) (IFixtureRenderer, error) {
	switch format {
	case common.FormatJSON:
		return NewJSONRenderer(), nil
	case common.FormatYAML:
		return NewYAMLRenderer(), nil
	default:
		return nil, errors.Errorf("invalid format %s", format)
	}
}
