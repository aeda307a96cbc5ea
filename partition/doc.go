// Package partition enumerates ordered compositions of an integer length
// into parts that are each at least a minimum size.
//
// 🚀 What is a partition here?
//
//	For a length n and a minimum part size m, a Partition is an ordered
//	sequence of integers, each ≥ m, summing to n. Order matters:
//	[4 6] and [6 4] are two different partitions of 10.
//
//	  Generate(10, 4) =
//	    [10]
//	    [4 6]
//	    [5 5]
//	    [6 4]
//
// ✨ Ordering:
//   - the whole length as a single part always comes first,
//     even when n < m (the degenerate one-piece partition);
//   - then every partition starting with m, then m+1, … up to n−m,
//     each tail ordered the same way recursively.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strpart/partition"
//
//	set, err := partition.Generate(25, 4, partition.WithMemo(true))
//	if err != nil {
//	  // errors.Is(err, partition.ErrInvalidArgument)
//	}
//	fmt.Println(len(set)) // 476
//
//	n, _ := partition.Count(25, 4) // 476, without enumerating
//
// Performance:
//
//   - Output size grows exponentially with n/m; intended for short lengths.
//   - Count is O(n²) time, O(n) memory.
//   - WithMemo trades O(output) memory for fewer recursive calls.
package partition
