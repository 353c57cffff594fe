// Package models defines the typed rows of the three reference sources.
//
// Each source has a small set of columns the merge depends on; those are named
// struct fields. Every other column is retained, in source order, in the row's
// Extra field so that pass-through output stays lossless.
package models
