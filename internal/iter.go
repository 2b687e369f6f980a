package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// DefinesConcat chains several define iterators into one. Later
// sequences are yielded after earlier ones; duplicate names are passed
// through unchanged.
func DefinesConcat(seqs ...iter.Seq2[string, string]) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, seq := range seqs {
			for name, value := range seq {
				if !yield(name, value) {
					return
				}
			}
		}
	}
}

// DefinesSorted yields a define map in name order, so listings and
// assembler predefinitions are reproducible.
func DefinesSorted[V cmp.Ordered](defines map[string]V) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, name := range slices.Sorted(maps.Keys(defines)) {
			if !yield(name, defines[name]) {
				return
			}
		}
	}
}
