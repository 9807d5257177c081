// Package face is the leaf of the module: Complex, accretion, the oracle,
// and pinch all operate on *Face[L] values and never reach into a Face's
// internal storage directly.
package face
