// Package segment splits a string into every segmentation allowed by the
// partitions of its length.
//
// A Segmentation is the list of substrings obtained by walking a string left
// to right and cutting off one piece per part of a partition.Partition:
//
//	Split("asdfqwerzx", Partition{4, 6}) = ["asdf" "qwerzx"]
//
//	Process("asdfqwerzx", 4) =
//	  ["asdfqwerzx"]
//	  ["asdf" "qwerzx"]
//	  ["asdfq" "werzx"]
//	  ["asdfqw" "erzx"]
//
// Lengths are measured in bytes by default; WithUnit(Runes) measures them in
// Unicode code points so multi-byte characters are never cut in half.
package segment
