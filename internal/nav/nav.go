// Package nav loads a MkDocs-style configuration and flattens its nav
// tree into the manuscript page order.
package nav

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the subset of a MkDocs configuration mkstat cares about.
// Nav is kept as a raw yaml.Node so that declaration order survives:
// decoding into a map would lose the order of labeled groups, and order
// is what defines the manuscript sequence.
type Config struct {
	SiteName string    `yaml:"site_name"`
	Nav      yaml.Node `yaml:"nav"`
}

// Page is one entry of the flattened nav tree. Index is the 0-based
// position in flatten order; Path is the page path as declared, not yet
// joined to the docs root.
type Page struct {
	Index int
	Path  string
}

// LoadConfig reads and parses the configuration at path. A missing nav
// key is a load error: without it there is no page list to work with.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Nav.IsZero() {
		return nil, fmt.Errorf("%s: no nav key", path)
	}

	return &cfg, nil
}

// Flatten walks a nav node depth-first, left to right, and collects the
// page paths in declaration order. Sequences contribute their elements
// in order, labeled groups contribute their values in key order (the
// label text itself carries no page information), and a string leaf is
// a page exactly when it ends in ".md". Any other scalar is ignored.
func Flatten(node *yaml.Node) []string {
	var pages []string
	flattenInto(node, &pages)
	return pages
}

func flattenInto(n *yaml.Node, out *[]string) {
	if n == nil {
		return
	}

	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			flattenInto(c, out)
		}
	case yaml.SequenceNode:
		for _, c := range n.Content {
			flattenInto(c, out)
		}
	case yaml.MappingNode:
		// Content alternates key, value; keys are group labels.
		for i := 1; i < len(n.Content); i += 2 {
			flattenInto(n.Content[i], out)
		}
	case yaml.AliasNode:
		flattenInto(n.Alias, out)
	case yaml.ScalarNode:
		if n.Tag == "!!str" && strings.HasSuffix(n.Value, ".md") {
			*out = append(*out, n.Value)
		}
	}
}

// Pages flattens the configured nav tree into indexed page entries.
func Pages(cfg *Config) []Page {
	paths := Flatten(&cfg.Nav)
	pages := make([]Page, len(paths))
	for i, p := range paths {
		pages[i] = Page{Index: i, Path: p}
	}
	return pages
}
