// Package utils provides common utility functions for the master-reference tool.
// It includes helpers for converting loosely typed driver values into the plain
// strings the merge works with.
package utils
