// File: pgm/example_test.go
package pgm_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/greyscale/pgm"
)

// ExampleDecode parses a small P2 image with two comment lines.
func ExampleDecode() {
	src := "P2\n# a\n# b\n3 2\n255\n1 2 3 4 5 6\n"

	h, samples, err := pgm.Decode[int32](strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%dx%d max=%d\n", h.Width, h.Height, h.MaxValue)
	for i := 0; i < h.Height; i++ {
		fmt.Println(samples[i*h.Width : (i+1)*h.Width])
	}

	// Output:
	// 3x2 max=255
	// [1 2 3]
	// [4 5 6]
}

// ExampleEncode writes a 2×2 image. Every sample is followed by two
// spaces, so lines are quoted to make the trailing separator visible.
func ExampleEncode() {
	var buf bytes.Buffer
	h := pgm.Header{Width: 2, Height: 2, MaxValue: 9}
	if err := pgm.Encode(&buf, h, [][]int32{{0, 9}, {9, 0}}, pgm.WithComment("checker")); err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, line := range strings.SplitAfter(buf.String(), "\n") {
		if line != "" {
			fmt.Printf("%q\n", line)
		}
	}

	// Output:
	// "P2\n"
	// "# checker\n"
	// "2  2\n"
	// "9\n"
	// "0  9  \n"
	// "9  0  \n"
}
