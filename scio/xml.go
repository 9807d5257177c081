package scio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kaya-arro/sc-simplify/internal/label"
	"github.com/kaya-arro/sc-simplify/scomplex"
)

// WriteXML writes c in the legacy SCFacetsEx XML format (spec.md §6):
// a single logical record spanning four lines, facets comma-separated
// within bracketed groups, groups comma-separated within an outer
// bracket. The format has no provision for a pair; callers emitting a
// pair under --xml write only the primary complex.
func WriteXML[L label.Label](w io.Writer, c *scomplex.Complex[L]) error {
	facets := c.Facets()
	sortForOutput(facets)

	groups := make([]string, len(facets))
	for i, f := range facets {
		tuple := f.Tuple()
		parts := make([]string, len(tuple))
		for j, v := range tuple {
			parts[j] = strconv.FormatUint(uint64(v), 10)
		}
		groups[i] = "[" + strings.Join(parts, ",") + "]"
	}
	body := "[" + strings.Join(groups, ",") + "]"

	_, err := fmt.Fprintf(w,
		"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<SimplicialComplexV2 type=\"SCSimplicialComplex\">\n<SCFacetsEx type=\"SCArray\">%s</SCFacetsEx>\n</SimplicialComplexV2>\n",
		body,
	)

	return err
}
