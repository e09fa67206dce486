package config

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// Sources represents the set of token lists to be retrieved.
type Sources struct {
	lists []ListSource // slice of list sources, in file order
}

// ListSource identifies a single remote token list.
type ListSource struct {
	Name string // display name for the list
	URL  string // the URL from which the list document can be fetched
}

// NewSources builds a Sources from the given list sources.
func NewSources(lists ...ListSource) *Sources {
	return &Sources{lists: lists}
}

// Lists returns the configured list sources in file order.
func (s *Sources) Lists() []ListSource {
	return s.lists
}

// FromYAML reads a Sources from a YAML representation.
func FromYAML(reader io.Reader) (*Sources, error) {
	var ymlSources yamlSources
	decoder := yaml.NewDecoder(reader)
	if err := decoder.Decode(&ymlSources); err != nil {
		return nil, fmt.Errorf("failed to decode list sources from YAML: %w", err)
	}

	sources := &Sources{}
	for _, ymlList := range ymlSources.Lists {
		sources.lists = append(sources.lists, ListSource{
			Name: ymlList.Name,
			URL:  ymlList.URL,
		})
	}

	return sources, nil
}

// ToYAML writes a Sources to a YAML representation.
func ToYAML(sources *Sources, writer io.Writer) error {
	var ymlSources yamlSources
	for _, list := range sources.lists {
		ymlSources.Lists = append(ymlSources.Lists, yamlListSource{
			Name: list.Name,
			URL:  list.URL,
		})
	}

	encoder := yaml.NewEncoder(writer)
	defer func() { _ = encoder.Close() }()

	if err := encoder.Encode(&ymlSources); err != nil {
		return fmt.Errorf("failed to encode list sources to YAML: %w", err)
	}

	return nil
}

// yamlListSource is an internal struct for YAML serialization.
type yamlListSource struct {
	Name string `yaml:"name"` // display name for the list
	URL  string `yaml:"url"`  // the URL from which the list document can be fetched
}

// yamlSources is an internal struct for YAML serialization.
type yamlSources struct {
	Lists []yamlListSource `yaml:"lists"`
}
