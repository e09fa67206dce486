package io

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// StripUTF8BOM returns an io.Reader that consumes a leading UTF-8 BOM
// (0xEF,0xBB,0xBF) if one is present; otherwise the reader's content passes
// through unchanged. Raw file hosts commonly serve JSON documents with a BOM,
// which encoding/json rejects.
func StripUTF8BOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)

	leading, err := br.Peek(len(utf8BOM))
	if err == nil && bytes.Equal(leading, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	return br
}

// FileExists checks to see if a file exists at the given path.
func FileExists(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	switch {
	case os.IsNotExist(err):
		return false, nil
	case err == nil:
		return true, nil
	default:
		return false, fmt.Errorf("failed to check for existence of file at path '%s': %w", filePath, err)
	}
}
