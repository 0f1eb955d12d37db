// Package catalog declares the fixed literal values of every fixture category.
//
// Each file defines one category (simple, options, enums, data_enums, vecs,
// composites, tuples, maps, sets): the value types it needs, their Borsh
// codecs and a producer that turns the literals into a samples.Category.
// Entries returns the categories in the order they are generated, the
// category name is the snake case form of its title and is also the file name
// of the fixture.
package catalog
