package repository

import (
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const (
	EncodingUTF8   = "utf8"
	EncodingLatin1 = "latin1"
)

// DatasetReader wraps r with a Latin-1 decoder when the upstream export is
// not UTF-8. The registry exports observed in production are Latin-1.
func DatasetReader(r io.Reader, encoding string) io.Reader {
	if encoding == EncodingLatin1 {
		return charmap.ISO8859_1.NewDecoder().Reader(r)
	}
	return r
}

// headerIndex maps trimmed column names to their positions.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))] = i
	}
	return idx
}
