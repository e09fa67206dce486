package tokenlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// Token is the metadata for a single token in a token list.
//
// The chain ID is held as an unsigned 32-bit integer. An early schema
// revision constrained it to 16 bits, but the schema has since widened it;
// values above 65535 are valid chain IDs and must not be rejected.
type Token struct {
	Name       string                     // the name of the token
	Symbol     string                     // the symbol for the token; must be alphanumeric
	Address    string                     // the checksummed address of the token on the specified chain
	ChainID    uint32                     // the chain ID of the Ethereum network where this token is deployed
	Decimals   uint16                     // the number of decimals for the token balance
	LogoURI    *url.URL                   // optional logo for the token; suggest SVG or PNG of size 64x64
	Tags       []string                   // tag identifiers associated with the token, defined at the list level
	Extensions map[string]*ExtensionValue // arbitrary vendor-specific metadata; a nil value is an explicit null
}

// tokenJSON is an internal struct for JSON serialization. Field order is the
// wire order.
type tokenJSON struct {
	Name       string                     `json:"name"`
	Symbol     string                     `json:"symbol"`
	Address    string                     `json:"address"`
	ChainID    uint32                     `json:"chainId"`
	Decimals   uint16                     `json:"decimals"`
	LogoURI    string                     `json:"logoURI,omitempty"`
	Tags       []string                   `json:"tags,omitempty"`
	Extensions map[string]*ExtensionValue `json:"extensions,omitempty"`
}

// MarshalJSON encodes the token in its wire form, omitting the logo when
// absent and the tag and extension collections when empty. An extension entry
// holding a nil value encodes as an explicit null.
func (t Token) MarshalJSON() ([]byte, error) {
	out := tokenJSON{
		Name:       t.Name,
		Symbol:     t.Symbol,
		Address:    t.Address,
		ChainID:    t.ChainID,
		Decimals:   t.Decimals,
		Tags:       t.Tags,
		Extensions: t.Extensions,
	}
	if t.LogoURI != nil {
		out.LogoURI = t.LogoURI.String()
	}

	encoded, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode token: %w", err)
	}

	return encoded, nil
}

// UnmarshalJSON decodes the token's wire form, failing on the first missing
// or invalid field. An explicit null extension value decodes as a present key
// holding a nil pointer, distinct from the key being absent.
func (t *Token) UnmarshalJSON(data []byte) error {
	var fields struct {
		Name       *string                    `json:"name"`
		Symbol     *string                    `json:"symbol"`
		Address    *string                    `json:"address"`
		ChainID    *uint32                    `json:"chainId"`
		Decimals   *uint16                    `json:"decimals"`
		LogoURI    *string                    `json:"logoURI"`
		Tags       []string                   `json:"tags"`
		Extensions map[string]*ExtensionValue `json:"extensions"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to decode token: %w", err)
	}

	if fields.Name == nil {
		return errors.New("token is missing required field 'name'")
	}

	if fields.Symbol == nil {
		return errors.New("token is missing required field 'symbol'")
	}

	if fields.Address == nil {
		return errors.New("token is missing required field 'address'")
	}

	if fields.ChainID == nil {
		return errors.New("token is missing required field 'chainId'")
	}

	if fields.Decimals == nil {
		return errors.New("token is missing required field 'decimals'")
	}

	logoURI, err := parseLogoURI(fields.LogoURI)
	if err != nil {
		return err
	}

	t.Name = *fields.Name
	t.Symbol = *fields.Symbol
	t.Address = *fields.Address
	t.ChainID = *fields.ChainID
	t.Decimals = *fields.Decimals
	t.LogoURI = logoURI
	t.Tags = fields.Tags
	t.Extensions = fields.Extensions

	return nil
}
