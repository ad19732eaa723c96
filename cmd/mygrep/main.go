// cmd/mygrep/main.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mygrep/mygrep/internal/cli"
)

// Exit status follows grep: 0 when a line matched, 1 when none did,
// 2 on usage, pattern, or read errors.
func main() {
	if err := cli.New().Execute(); err != nil {
		if errors.Is(err, cli.ErrNoMatch) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "mygrep: %v\n", err)
		os.Exit(2)
	}
}
