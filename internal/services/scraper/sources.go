package scraper

import (
	_ "embed"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed sources.yaml
var sourcesYAML []byte

// Source is one fan-out target: a display name for the status narrative and
// a templated search URL.
type Source struct {
	Name      string `yaml:"name"`
	SearchURL string `yaml:"search_url"`
}

// BuildURL produces the source-scoped request URL for a query
func (s Source) BuildURL(query string) string {
	return strings.ReplaceAll(s.SearchURL, "{query}", url.QueryEscape(query))
}

type sourceCatalog struct {
	Sources []Source `yaml:"sources"`
}

// loadSources parses the embedded catalog. The catalog ships inside the
// binary; a parse failure is a build defect, not a runtime condition.
func loadSources() ([]Source, error) {
	var catalog sourceCatalog
	if err := yaml.Unmarshal(sourcesYAML, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse embedded source catalog: %w", err)
	}
	if len(catalog.Sources) == 0 {
		return nil, fmt.Errorf("embedded source catalog is empty")
	}
	return catalog.Sources, nil
}

// orderSources returns the catalog reordered for a source hint: the hinted
// site is tried first, everything else follows in catalog order.
func orderSources(sources []Source, preferred string) []Source {
	if preferred == "" {
		return sources
	}

	ordered := make([]Source, 0, len(sources))
	for _, s := range sources {
		if strings.EqualFold(s.Name, preferred) {
			ordered = append(ordered, s)
		}
	}
	for _, s := range sources {
		if !strings.EqualFold(s.Name, preferred) {
			ordered = append(ordered, s)
		}
	}
	return ordered
}
