package fixtures

import (
	"bytes"
	"fmt"
)

// DifferenceKind tells how a fixture file differs from the generated content
type DifferenceKind int

const (
	// Missing means the fixture file does not exist
	Missing DifferenceKind = iota
	// Outdated means the fixture file exists but its content differs
	Outdated
)

func (k DifferenceKind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Outdated:
		return "outdated"
	default:
		return fmt.Sprintf("DifferenceKind(%d)", int(k))
	}
}

// Difference describes one fixture file that does not match the catalog
type Difference struct {
	Name string
	Path string
	Kind DifferenceKind
	// Line is the first line (1 based) that differs, only set for Outdated
	Line int
}

func (d Difference) String() string {
	if d.Kind == Outdated {
		return fmt.Sprintf("%s: %s (first difference in line %d)", d.Path, d.Kind, d.Line)
	}
	return fmt.Sprintf("%s: %s", d.Path, d.Kind)
}

// firstDifferentLine returns the 1 based number of the first line that differs between a and b
func firstDifferentLine(a, b []byte) int {
	la := bytes.Split(a, []byte("\n"))
	lb := bytes.Split(b, []byte("\n"))
	for i := 0; i < min(len(la), len(lb)); i++ {
		if !bytes.Equal(la[i], lb[i]) {
			return i + 1
		}
	}
	return min(len(la), len(lb)) + 1
}
