/*
Package jasily is a grab-bag of small helpers that keep showing up in console tools.

  - cli is a command dispatch framework with declared arguments, aliases, and positional binding.
  - convert turns strings into typed values.
  - env reads typed configuration from environment variables.
  - hashx calculates several hashes of a stream in one pass.
  - structures/comparer provides pluggable equality and a set built on it.

The package naming in this module should map intuitively to standard packages where there's an obvious counterpart.
*/
package jasily
