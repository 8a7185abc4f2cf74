// Package layout provides helper functions and types for configuring switch
// ID schemes in stage constructors.
package layout

import (
	"fmt"
	"strconv"
)

// IDFn generates the per-stage part of a switch identifier from its
// zero-based index. It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the one-based decimal of idx, e.g. 0→"1", 6→"7",
// matching the I1…Ik / M1…Mj labels of fabric diagrams.
// Panics if idx < 0.
func DefaultIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("DefaultIDFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.Itoa(idx + 1)
}

// ZeroBasedIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Panics if idx < 0.
func ZeroBasedIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ZeroBasedIDFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the Excel-style column name for idx, e.g. 0→"A",
// 25→"Z", 26→"AA".
// Panics if idx < 0.
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

// HexIDFn returns the lowercase hexadecimal representation of idx,
// e.g. 0→"0", 10→"a", 255→"ff".
// Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 16)
}

// WithZeroBasedIDs sets the ID scheme to ZeroBasedIDFn.
func WithZeroBasedIDs() Option {
	return WithIDScheme(ZeroBasedIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() Option {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithHexIDs sets the ID scheme to HexIDFn.
func WithHexIDs() Option {
	return WithIDScheme(HexIDFn)
}
