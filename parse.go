package tokenlist

import (
	"encoding/json"
	"fmt"
	"io"

	tlio "github.com/telcoin/token-list/internal/io"
)

// Parse decodes a token list document from the given reader. A leading UTF-8
// BOM, as sometimes served by raw file hosts, is tolerated.
func Parse(reader io.Reader) (*TokenList, error) {
	var list TokenList
	decoder := json.NewDecoder(tlio.StripUTF8BOM(reader))
	if err := decoder.Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode token list document: %w", err)
	}

	return &list, nil
}
