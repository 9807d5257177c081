// Command sc-simplify reads a simplicial complex as a facet-per-line
// list on stdin, simplifies it (nerve-reduction, edge pinching, and
// optionally a contractible-subcomplex pair), and writes the result to
// stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/kaya-arro/sc-simplify/internal/label"
	"github.com/kaya-arro/sc-simplify/pipeline"
	"github.com/kaya-arro/sc-simplify/progress"
	"github.com/kaya-arro/sc-simplify/scio"
	"github.com/kaya-arro/sc-simplify/scomplex"
)

func main() {
	log.SetPrefix("sc-simplify: ")
	log.SetFlags(0)

	checkInput := flag.Bool("check-input", false, "force re-maximalification of the input")
	skipNerve := flag.Bool("skip-nerve", false, "skip Čech-nerve reduction")
	maxPinchLoops := flag.Int("max-pinch-loops", 2, "cap on pinch sweeps (0 disables pinching)")
	noPair := flag.Bool("no-pair", false, "emit only the simplified complex, no subcomplex pair")
	skipMinimizePair := flag.Bool("skip-minimize-pair", false, "emit the raw (X, Y) pair instead of minimizing it")
	xmlOut := flag.Bool("xml", false, "write the SCFacetsEx XML format instead of plain text")
	quiet := flag.Bool("quiet", false, "suppress progress output")
	flag.Parse()

	raw, maxLabel, err := scio.ReadFacets(os.Stdin)
	if err != nil {
		log.Fatalf("%v", err)
	}

	cancel := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		<-sigc
		close(cancel)
	}()

	var sink progress.Sink = progress.NoOp{}
	if !*quiet {
		sink = progress.NewStderrTerminal()
	}

	opts := []pipeline.Option{
		pipeline.WithMaxPinchLoops(*maxPinchLoops),
		pipeline.WithProgress(sink),
		pipeline.WithCancel(cancel),
	}
	if *skipNerve {
		opts = append(opts, pipeline.WithSkipNerve())
	}
	if *noPair {
		opts = append(opts, pipeline.WithNoPair())
	}
	if *skipMinimizePair {
		opts = append(opts, pipeline.WithSkipMinimizePair())
	}

	if label.FitsNarrow(maxLabel, len(raw)) {
		runNarrow[uint16](raw, *checkInput, *xmlOut, opts)
	} else {
		runNarrow[uint32](raw, *checkInput, *xmlOut, opts)
	}

	if t, ok := sink.(*progress.Terminal); ok {
		t.Finish()
	}
}

func runNarrow[L label.Label](raw [][]uint64, checkInput, xmlOut bool, opts []pipeline.Option) {
	faces := scio.ToFaces[L](raw)

	var c *scomplex.Complex[L]
	if checkInput {
		c = scomplex.FromCheckMaximal(faces)
	} else {
		c = scomplex.FromCheckSorted(faces)
	}

	res := pipeline.Run(c, opts...)

	var writeErr error
	switch {
	case xmlOut:
		writeErr = scio.WriteXML(os.Stdout, res.Reduced)
	case res.Pair != nil:
		writeErr = scio.WritePair(os.Stdout, res.Reduced, res.Pair)
	default:
		writeErr = scio.WriteText(os.Stdout, res.Reduced)
	}
	if writeErr != nil {
		log.Fatalf("write: %v", writeErr)
	}

	if res.Cancelled {
		fmt.Fprintln(os.Stderr, "sc-simplify: cancelled")
		os.Exit(1)
	}
}
