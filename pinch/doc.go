// Package pinch contracts edges of a Complex in place, one sweep at a
// time, using oracle (through the injected Contractible function) to
// validate every contraction before applying it.
package pinch
