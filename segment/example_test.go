package segment_test

import (
	"fmt"

	"github.com/katalvlaran/strpart/partition"
	"github.com/katalvlaran/strpart/segment"
)

// ExampleSplit cuts a string by one partition.
func ExampleSplit() {
	seg, err := segment.Split("asdfqwerzx", partition.Partition{4, 6})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%q\n", seg)
	// Output:
	// ["asdf" "qwerzx"]
}

// ExampleProcess lists every segmentation with pieces of at least 4 bytes.
func ExampleProcess() {
	segs, err := segment.Process("asdfqwerzx", 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, seg := range segs {
		fmt.Printf("%q\n", seg)
	}
	// Output:
	// ["asdfqwerzx"]
	// ["asdf" "qwerzx"]
	// ["asdfq" "werzx"]
	// ["asdfqw" "erzx"]
}
