package toggle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ReadLines splits r into lines, keeping each line's terminator as is.
// The last line has no terminator if the input doesn't end with a newline.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", len(lines)+1, err)
		}
	}
}

// writeLines writes lines verbatim, nothing is added between them.
func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
