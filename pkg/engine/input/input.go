package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Lines reads r one line at a time and delivers each line on the returned channel.
// The channel closes at end of input. A read error is delivered on errs first.
// Reading from a terminal cannot be interrupted, so the reader goroutine may outlive ctx.
func Lines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- strings.TrimRight(sc.Text(), "\r"):
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			errs <- fmt.Errorf("read input: %w", err)
		}
	}()

	return lines, errs
}
