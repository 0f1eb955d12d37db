package render

import (
	"bytes"

	"github.com/ValentinKolb/bsamples/lib/common"
	"github.com/ValentinKolb/bsamples/lib/samples"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// NewYAMLRenderer creates a new renderer producing YAML with two space indentation
func NewYAMLRenderer() IFixtureRenderer {
	return &yamlRendererImpl{}
}

// yamlRendererImpl implements the IFixtureRenderer interface using yaml encoding
type yamlRendererImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see render.IFixtureRenderer)
// --------------------------------------------------------------------------

func (y yamlRendererImpl) Render(c *samples.Category) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, errors.Wrapf(err, "render %s as yaml", c.Name())
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrapf(err, "render %s as yaml", c.Name())
	}
	return buf.Bytes(), nil
}

func (y yamlRendererImpl) Format() common.OutputFormat {
	return common.FormatYAML
}
