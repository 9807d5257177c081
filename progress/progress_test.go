package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoOpDoesNothing(t *testing.T) {
	require.NotPanics(t, func() {
		NoOp{}.OnProgress("pinch", 1, 10, "sweeping")
	})
}

func TestTerminalNonTTYWritesPlainLines(t *testing.T) {
	var buf bytes.Buffer
	sink := &Terminal{Out: &buf, isTerm: false}
	sink.OnProgress("nerve-reduce", 2, 5, "reducing")
	require.Contains(t, buf.String(), "nerve-reduce")
	require.Contains(t, buf.String(), "2/5")
}

func TestTerminalTTYOverwritesLine(t *testing.T) {
	var buf bytes.Buffer
	sink := &Terminal{Out: &buf, isTerm: true}
	sink.OnProgress("pinch", 1, 0, "sweeping")
	require.Contains(t, buf.String(), "\r")
	sink.Finish()
	require.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
}
