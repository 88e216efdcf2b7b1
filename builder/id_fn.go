// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// id_fn.go - node naming schemes.
//
// Every IDFn must be injective on the indices a constructor uses; name
// collisions across constructors merge nodes on purpose.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps an index to a node name.
type IDFn func(idx int) string

// DefaultIDFn returns decimal names: "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns "A".."Z". Panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// PairIDFn returns two-letter names "AA", "AB", ..., "ZZ". Panics outside [0,675].
func PairIDFn(idx int) string {
	if idx < 0 || idx >= 26*26 {
		panic(fmt.Sprintf("PairIDFn: idx must be in [0,675], got %d", idx))
	}
	return string([]rune{'A' + rune(idx/26), 'A' + rune(idx%26)})
}

// ExcelColumnIDFn returns spreadsheet column names: "A".."Z", "AA", "AB", ...
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns prefix followed by the decimal index.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb names nodes prefix0, prefix1, ...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithPairIDs names nodes AA, AB, ...
func WithPairIDs() BuilderOption {
	return WithIDScheme(PairIDFn)
}

// WithExcelColumnIDs names nodes A..Z, AA, AB, ...
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithSymbolIDs names nodes A..Z.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}
