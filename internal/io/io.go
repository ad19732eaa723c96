// internal/io/io.go
package io

import (
	"bufio"
	"io"
)

// maxLineSize caps a single scanned line at 1 MiB, well past bufio's
// 64 KiB default.
const maxLineSize = 1024 * 1024

// Lines returns a scanner that yields the input one line at a time.
func Lines(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}
