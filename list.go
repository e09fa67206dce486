package tokenlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// TokenList is a list of Ethereum token metadata conforming to the token
// list schema (https://uniswap.org/tokenlist.schema.json).
type TokenList struct {
	Name      string         // the name of the token list
	Timestamp Timestamp      // when this immutable version of the list was created
	Version   Version        // the version of the list, used in change detection
	LogoURI   *url.URL       // optional logo for the list; prefer SVG or PNG of size 256x256
	Keywords  []string       // keywords associated with the contents of the list
	Tags      map[string]Tag // tag definitions, keyed by tag identifier
	Tokens    []Token        // the tokens included in the list, in list order
}

// Tag is the definition of a tag that can be associated with a token via its
// identifier. The identifier is the key under the list's Tags mapping and is
// not necessarily equal to the tag's name.
type Tag struct {
	Name        string // the name of the tag
	Description string // a user-friendly description of the tag
}

// tokenListJSON is an internal struct for JSON serialization. Field order is
// the wire order.
type tokenListJSON struct {
	Name      string         `json:"name"`
	Timestamp Timestamp      `json:"timestamp"`
	Version   Version        `json:"version"`
	LogoURI   string         `json:"logoURI,omitempty"`
	Keywords  []string       `json:"keywords,omitempty"`
	Tags      map[string]Tag `json:"tags,omitempty"`
	Tokens    []Token        `json:"tokens,omitempty"`
}

// MarshalJSON encodes the list in its wire form, omitting the logo when
// absent and the keyword, tag and token collections when empty.
func (l TokenList) MarshalJSON() ([]byte, error) {
	out := tokenListJSON{
		Name:      l.Name,
		Timestamp: l.Timestamp,
		Version:   l.Version,
		Keywords:  l.Keywords,
		Tags:      l.Tags,
		Tokens:    l.Tokens,
	}
	if l.LogoURI != nil {
		out.LogoURI = l.LogoURI.String()
	}

	encoded, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode token list: %w", err)
	}

	return encoded, nil
}

// UnmarshalJSON decodes the list's wire form, failing on the first missing or
// invalid field. Omitted keyword, tag and token collections decode as empty.
func (l *TokenList) UnmarshalJSON(data []byte) error {
	var fields struct {
		Name      *string        `json:"name"`
		Timestamp *Timestamp     `json:"timestamp"`
		Version   *Version       `json:"version"`
		LogoURI   *string        `json:"logoURI"`
		Keywords  []string       `json:"keywords"`
		Tags      map[string]Tag `json:"tags"`
		Tokens    []Token        `json:"tokens"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to decode token list: %w", err)
	}

	if fields.Name == nil {
		return errors.New("token list is missing required field 'name'")
	}

	if fields.Timestamp == nil {
		return errors.New("token list is missing required field 'timestamp'")
	}

	if fields.Version == nil {
		return errors.New("token list is missing required field 'version'")
	}

	logoURI, err := parseLogoURI(fields.LogoURI)
	if err != nil {
		return err
	}

	l.Name = *fields.Name
	l.Timestamp = *fields.Timestamp
	l.Version = *fields.Version
	l.LogoURI = logoURI
	l.Keywords = fields.Keywords
	l.Tags = fields.Tags
	l.Tokens = fields.Tokens

	return nil
}

// tagJSON is an internal struct for JSON serialization.
type tagJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MarshalJSON encodes the tag in its wire form.
func (t Tag) MarshalJSON() ([]byte, error) {
	encoded, err := json.Marshal(tagJSON{Name: t.Name, Description: t.Description})
	if err != nil {
		return nil, fmt.Errorf("failed to encode tag: %w", err)
	}

	return encoded, nil
}

// UnmarshalJSON decodes the tag's wire form; both fields are required.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var fields struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to decode tag: %w", err)
	}

	if fields.Name == nil {
		return errors.New("tag is missing required field 'name'")
	}

	if fields.Description == nil {
		return errors.New("tag is missing required field 'description'")
	}

	t.Name = *fields.Name
	t.Description = *fields.Description

	return nil
}

// parseLogoURI parses an optional logoURI field value. The schema requires an
// absolute URI; a relative or unparsable value is a decode failure.
func parseLogoURI(raw *string) (*url.URL, error) {
	if raw == nil {
		return nil, nil
	}

	parsed, err := url.Parse(*raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse logoURI '%s': %w", *raw, err)
	}

	if !parsed.IsAbs() {
		return nil, fmt.Errorf("logoURI '%s' is not an absolute URI", *raw)
	}

	return parsed, nil
}
