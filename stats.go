package readmegen

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CollectStats reports the size and line count of the file at path.
// A line ends at \n, \r\n or \r; a final line without terminator counts.
func CollectStats(path string) (FileStats, error) {
	f, err := os.Open(path) // #nosec G304 -- path is the configured source
	if err != nil {
		return FileStats{}, fmt.Errorf("%w: %w", ErrStatSource, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return FileStats{}, fmt.Errorf("%w: %w", ErrStatSource, err)
	}

	lines, err := countLines(f)
	if err != nil {
		return FileStats{}, fmt.Errorf("%w: %w", ErrStatSource, err)
	}

	return FileStats{
		Bytes:  info.Size(),
		SizeKB: FormatKB(info.Size()),
		Lines:  lines,
	}, nil
}

// FormatKB renders a byte count in kilobytes with one decimal digit.
func FormatKB(n int64) string {
	return strconv.FormatFloat(float64(n)/1024, 'f', 1, 64)
}

func countLines(r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	lines := 0
	prevCR := false
	open := false // bytes seen since the last terminator

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}

		switch b {
		case '\n':
			if !prevCR {
				lines++
			}
			prevCR, open = false, false
		case '\r':
			lines++
			prevCR, open = true, false
		default:
			prevCR, open = false, true
		}
	}

	if open {
		lines++
	}
	return lines, nil
}
