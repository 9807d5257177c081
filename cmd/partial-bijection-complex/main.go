// Command partial-bijection-complex generates the order complex of
// partial bijections between two finite sets of the given sizes and
// writes it as a facet-per-line list on stdout.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/kaya-arro/sc-simplify/bijection"
	"github.com/kaya-arro/sc-simplify/scio"
)

func main() {
	log.SetPrefix("partial-bijection-complex: ")
	log.SetFlags(0)

	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <a> <b>\n", os.Args[0])
		os.Exit(2)
	}

	a, err := strconv.ParseUint(os.Args[1], 10, 32)
	if err != nil {
		log.Fatalf("invalid set size %q: %v", os.Args[1], err)
	}
	b, err := strconv.ParseUint(os.Args[2], 10, 32)
	if err != nil {
		log.Fatalf("invalid set size %q: %v", os.Args[2], err)
	}

	c := bijection.PartialBijectionComplex(uint32(a), uint32(b))
	if err := scio.WriteText(os.Stdout, c); err != nil {
		log.Fatalf("write: %v", err)
	}
}
