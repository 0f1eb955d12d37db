package catalog

import (
	"slices"

	"github.com/ValentinKolb/bsamples/lib/samples"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/pkg/errors"
	"github.com/stoewer/go-strcase"
)

var Logger = logger.GetLogger("catalog")

// ProduceFunc builds the record of one category from its literal values
type ProduceFunc func(p *samples.Producer) (*samples.Category, error)

// Entry is one registered category
type Entry struct {
	// Title is the category's type name, the file name is derived from it
	Title   string
	produce ProduceFunc
}

// entries holds all categories in the order they are generated
var entries = []Entry{
	{Title: "Simple", produce: produceSimple},
	{Title: "Options", produce: produceOptions},
	{Title: "Enums", produce: produceEnums},
	{Title: "DataEnums", produce: produceDataEnums},
	{Title: "Vecs", produce: produceVecs},
	{Title: "Composites", produce: produceComposites},
	{Title: "Tuples", produce: produceTuples},
	{Title: "Maps", produce: produceMaps},
	{Title: "Sets", produce: produceSets},
}

// Entries returns all categories in generation order
func Entries() []Entry {
	return slices.Clone(entries)
}

// Names returns the names of all categories in generation order
func Names() []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

// Lookup finds a category by name
func Lookup(name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name() == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Name returns the snake case category name used for the record and its file
func (e Entry) Name() string {
	return strcase.SnakeCase(e.Title)
}

// Produce builds the category record. p must have been created for this category.
func (e Entry) Produce(p *samples.Producer) (*samples.Category, error) {
	if p.Category() != e.Name() {
		return nil, errors.Errorf("producer for %s cannot produce %s", p.Category(), e.Name())
	}
	c, err := e.produce(p)
	if err != nil {
		return nil, errors.Wrapf(err, "produce %s", e.Name())
	}
	Logger.Debugf("%s: %d samples in %d fields, %d dropped", e.Name(), c.Count(), len(c.Fields()), p.Dropped())
	return c, nil
}
