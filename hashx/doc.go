// Package hashx calculates several hashes of a stream in a single pass.
package hashx
