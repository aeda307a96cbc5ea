// Package strpart enumerates the ordered ways to cut a length, or a string,
// into pieces that are each at least a minimum size.
//
// 🚀 What is strpart?
//
//	A small pure-Go library built from two layers:
//		• partition/ — every ordered composition of n into parts ≥ m,
//		  whole length first, then ascending first part, recursively
//		• segment/   — applies those compositions to a string, yielding
//		  every segmentation whose pieces rejoin to the original
//
// ✨ Why strpart?
//
//   - Deterministic order, no hidden state between calls
//   - Sentinel errors, checked with errors.Is
//   - Functional options: memoisation, part limits, byte or rune units
//   - A CLI (cmd/strpart) printing JSON lines or YAML
//
// Quick example:
//
//	segment.Process("asdfqwerzx", 4) =
//	  [asdfqwerzx]
//	  [asdf qwerzx]
//	  [asdfq werzx]
//	  [asdfqw erzx]
//
//	go get github.com/katalvlaran/strpart
package strpart
