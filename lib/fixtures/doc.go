// Package fixtures writes the rendered category records to disk and checks
// existing fixture files against the catalog.
//
// A Generator works on an afero.Fs so the same code writes to the operating
// system in the command line tool and to memory in tests. Each category is
// produced, rendered and written before the next one starts, the first error
// aborts the run and already written files are kept.
//
// Usage:
//
//	g, err := fixtures.NewGenerator(afero.NewOsFs(), config)
//	written, err := g.Generate()
//	diffs, err := g.Check()
package fixtures
