package fixtures

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/ValentinKolb/bsamples/lib/catalog"
	"github.com/ValentinKolb/bsamples/lib/common"
	"github.com/ValentinKolb/bsamples/lib/render"
	"github.com/ValentinKolb/bsamples/lib/samples"
	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

var Logger = logger.GetLogger("fixtures")

// Fixture is the rendered content of one category file
type Fixture struct {
	// Name is the category name
	Name string
	// Path is the location of the fixture file inside the output directory
	Path string
	// Data is the rendered file content
	Data []byte
	// Category is the record the file was rendered from
	Category *samples.Category
}

// Generator produces, renders and writes fixture files. All work is done
// sequentially in catalog order and stops at the first error.
type Generator struct {
	fs       afero.Fs
	config   common.GeneratorConfig
	renderer render.IFixtureRenderer
	entries  []catalog.Entry
	set      *metrics.Set
}

// NewGenerator creates a generator working on fs. It fails for an unknown
// output format or an unknown category name in config.Only.
func NewGenerator(fs afero.Fs, config common.GeneratorConfig) (*Generator, error) {
	r, err := render.NewRenderer(config.Format)
	if err != nil {
		return nil, err
	}

	for _, name := range config.Only {
		if _, ok := catalog.Lookup(name); !ok {
			return nil, errors.Errorf("unknown category %s (expected one of: %v)", name, catalog.Names())
		}
	}

	var entries []catalog.Entry
	for _, e := range catalog.Entries() {
		if config.Selected(e.Name()) {
			entries = append(entries, e)
		}
	}

	return &Generator{
		fs:       fs,
		config:   config,
		renderer: r,
		entries:  entries,
		set:      metrics.NewSet(),
	}, nil
}

// Path returns the file path of the named category
func (g *Generator) Path(name string) string {
	return filepath.Join(g.config.OutDir, name+"."+g.renderer.Format().Extension())
}

// Build produces and renders the fixture of one catalog entry without touching the file system
func (g *Generator) Build(e catalog.Entry) (*Fixture, error) {
	p := samples.NewProducer(e.Name(), g.config.Strict, g.set)
	c, err := e.Produce(p)
	if err != nil {
		return nil, err
	}
	data, err := g.renderer.Render(c)
	if err != nil {
		return nil, err
	}
	return &Fixture{
		Name:     e.Name(),
		Path:     g.Path(e.Name()),
		Data:     data,
		Category: c,
	}, nil
}

// BuildAll builds the fixtures of all selected categories in catalog order
func (g *Generator) BuildAll() ([]*Fixture, error) {
	out := make([]*Fixture, 0, len(g.entries))
	for _, e := range g.entries {
		f, err := g.Build(e)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// Generate writes the fixture file of every selected category. Each category
// is produced, rendered and written before the next one starts. Files written
// before a failure are left in place.
func (g *Generator) Generate() ([]*Fixture, error) {
	if err := g.fs.MkdirAll(g.config.OutDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create output directory %s", g.config.OutDir)
	}

	written := make([]*Fixture, 0, len(g.entries))
	for _, e := range g.entries {
		f, err := g.Build(e)
		if err != nil {
			return written, err
		}
		if err := writeFile(g.fs, f.Path, f.Data); err != nil {
			return written, err
		}
		Logger.Infof("wrote %s (%d samples, %d bytes)", f.Path, f.Category.Count(), len(f.Data))
		written = append(written, f)
	}

	return written, g.writeMetrics()
}

// Check compares the fixtures of all selected categories with the files in
// the output directory. It returns one Difference per missing or outdated
// file, the error is only set if a file could not be read.
func (g *Generator) Check() ([]Difference, error) {
	var diffs []Difference
	for _, e := range g.entries {
		f, err := g.Build(e)
		if err != nil {
			return nil, err
		}

		existing, err := afero.ReadFile(g.fs, f.Path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			diffs = append(diffs, Difference{Name: f.Name, Path: f.Path, Kind: Missing})
		case err != nil:
			return nil, errors.Wrapf(err, "read %s", f.Path)
		case !bytes.Equal(existing, f.Data):
			diffs = append(diffs, Difference{Name: f.Name, Path: f.Path, Kind: Outdated, Line: firstDifferentLine(existing, f.Data)})
		default:
			Logger.Debugf("%s is up to date", f.Path)
		}
	}
	return diffs, g.writeMetrics()
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// writeFile creates or truncates path, writes data and closes the file
func writeFile(fs afero.Fs, path string, data []byte) error {
	file, err := fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(file.Close(), "close %s", path)
}

// writeMetrics writes the sample counters to the configured metrics file
func (g *Generator) writeMetrics() error {
	if g.config.MetricsFile == "" {
		return nil
	}
	var buf bytes.Buffer
	g.set.WritePrometheus(&buf)
	if err := writeFile(g.fs, g.config.MetricsFile, buf.Bytes()); err != nil {
		return err
	}
	Logger.Debugf("wrote metrics to %s", g.config.MetricsFile)
	return nil
}
