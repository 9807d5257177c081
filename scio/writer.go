package scio

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/kaya-arro/sc-simplify/face"
	"github.com/kaya-arro/sc-simplify/internal/label"
	"github.com/kaya-arro/sc-simplify/scomplex"
)

// WriteText writes c's facets one per line: descending cardinality
// (already the Complex's own ordering), ties broken by descending
// tuple order, each label right-justified to the width of the largest
// label actually written (spec.md §6).
func WriteText[L label.Label](w io.Writer, c *scomplex.Complex[L]) error {
	facets := c.Facets()
	sortForOutput(facets)

	width := labelWidth(facets)
	for _, f := range facets {
		if err := writeFacetLine(w, f, width); err != nil {
			return err
		}
	}

	return nil
}

// WritePair writes x, a single blank line, then y: the pair-output
// format of spec.md §6.
func WritePair[L label.Label](w io.Writer, x, y *scomplex.Complex[L]) error {
	if err := WriteText(w, x); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	return WriteText(w, y)
}

func writeFacetLine[L label.Label](w io.Writer, f *face.Face[L], width int) error {
	tuple := f.Tuple()
	for i, v := range tuple {
		if i > 0 {
			if _, err := fmt.Fprint(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%*d", width, uint64(v)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)

	return err
}

func sortForOutput[L label.Label](facets []*face.Face[L]) {
	sort.SliceStable(facets, func(i, j int) bool {
		fi, fj := facets[i], facets[j]
		if fi.Len() != fj.Len() {
			return fi.Len() > fj.Len()
		}
		ti, tj := fi.Tuple(), fj.Tuple()
		for k := range ti {
			if ti[k] != tj[k] {
				return ti[k] > tj[k]
			}
		}

		return false
	})
}

func labelWidth[L label.Label](facets []*face.Face[L]) int {
	width := 1
	for _, f := range facets {
		for _, v := range f.Tuple() {
			if n := len(strconv.FormatUint(uint64(v), 10)); n > width {
				width = n
			}
		}
	}

	return width
}
