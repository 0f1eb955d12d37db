package render

import (
	"bytes"
	"encoding/json"

	"github.com/ValentinKolb/bsamples/lib/common"
	"github.com/ValentinKolb/bsamples/lib/samples"
	"github.com/pkg/errors"
)

// NewJSONRenderer creates a new renderer producing pretty printed JSON
// (two space indentation, no HTML escaping, trailing newline)
func NewJSONRenderer() IFixtureRenderer {
	return &jsonRendererImpl{}
}

// jsonRendererImpl implements the IFixtureRenderer interface using json encoding
type jsonRendererImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see render.IFixtureRenderer)
// --------------------------------------------------------------------------

func (j jsonRendererImpl) Render(c *samples.Category) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return nil, errors.Wrapf(err, "render %s as json", c.Name())
	}
	return buf.Bytes(), nil
}

func (j jsonRendererImpl) Format() common.OutputFormat {
	return common.FormatJSON
}
