package minipng

import (
	"fmt"
	"io"
	"strings"

	"github.com/k1LoW/errors"
)

const bytesPerLine = 16

// hexColumnWidth keeps the ASCII column aligned on short lines.
const hexColumnWidth = bytesPerLine * 3

// Hexdump writes b to w as offset, hex and ASCII columns, 16 bytes per line.
func Hexdump(w io.Writer, b []byte) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	for i := 0; i < len(b); i += bytesPerLine {
		end := min(i+bytesPerLine, len(b))
		if _, err := io.WriteString(w, dumpLine(i, b[i:end])); err != nil {
			return fmt.Errorf("failed to write hexdump: %w", err)
		}
	}
	return nil
}

// Dump returns the hexdump of b as a string.
func Dump(b []byte) string {
	sb := &strings.Builder{}
	_ = Hexdump(sb, b) // strings.Builder never fails
	return sb.String()
}

func dumpLine(offset int, line []byte) string {
	hexs := make([]string, 0, len(line))
	text := make([]byte, 0, len(line))
	for _, c := range line {
		hexs = append(hexs, fmt.Sprintf("%02X", c))
		if c >= 0x20 && c <= 0x7e {
			text = append(text, c)
		} else {
			text = append(text, '.')
		}
	}
	return fmt.Sprintf("%08X: %-*s %s\n", offset, hexColumnWidth, strings.Join(hexs, " "), text)
}
