// Package shape provides the core shape and rank model for nested
// numeric arrays: inferring a shape from nested data, computing element
// counts, converting a shape to a target rank, and row-major index
// iteration.
package shape
