// Package comparer provides pluggable equality for values that can't, or shouldn't, use == directly.
package comparer
