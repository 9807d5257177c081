// Package scomplex is the structural core of sc-simplify: construction,
// querying, and transformation of abstract simplicial complexes over a
// generic vertex-label type. accretion, oracle, pinch, and pipeline all
// build on this package, alongside face for individual facets.
package scomplex
