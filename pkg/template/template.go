package template

import (
	"bytes"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/zan8in/stringsutil"
	"gopkg.in/yaml.v3"
)

const (
	// FaviconHashKey marks a shodan query as a favicon hash search.
	FaviconHashKey = "favicon.hash"

	ShodanSearchURL = "https://www.shodan.io/search?query=http.favicon.hash%3A"
)

var (
	ErrNotMapping        = errors.New("template is not a mapping")
	ErrMultipleDocuments = errors.New("expected a single document")
)

// Template is the subset of a nuclei template this tool reads. A nil
// field means the key is absent or null.
type Template struct {
	Info *Info
}

type Info struct {
	Metadata *Metadata
}

type Metadata struct {
	ShodanQuery *Queries
	Product     *string
}

// Queries holds a shodan-query value, which templates write either as a
// single string or as a list of strings.
type Queries []string

func (q *Queries) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*q = Queries{value.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*q = list
		return nil
	}
	return errors.Errorf("line %d: unsupported shodan-query kind", value.Line)
}

// Entry is one favicon hash found in a template.
type Entry struct {
	Template   string
	Hash       string
	Product    string
	HasProduct bool
}

// URL returns the shodan search URL for the entry hash.
func (e *Entry) URL() string {
	return ShodanURL(e.Hash)
}

// Line is the text printed for the entry: "<hash> <product>" when the
// template names a product, the shodan search URL otherwise.
func (e *Entry) Line() string {
	if e.HasProduct {
		return e.Hash + " " + e.Product
	}
	return e.URL()
}

func ShodanURL(hash string) string {
	return ShodanSearchURL + hash
}

// Parse decodes template content. An empty document yields an empty
// Template and no error. Repeated mapping keys are accepted and the last
// one wins; more than one document in the stream is an error.
func Parse(data []byte) (*Template, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var node yaml.Node
	if err := dec.Decode(&node); err != nil {
		if err == io.EOF {
			return &Template{}, nil
		}
		return nil, err
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, ErrMultipleDocuments
	}

	tpl := &Template{}
	root := resolve(&node)
	if root == nil || isNull(root) {
		return tpl, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	info := lookup(root, "info")
	if info == nil {
		return tpl, nil
	}
	tpl.Info = &Info{}

	metadata := lookup(info, "metadata")
	if metadata == nil {
		return tpl, nil
	}
	md := &Metadata{}
	tpl.Info.Metadata = md

	if query := lookup(metadata, "shodan-query"); query != nil {
		var queries Queries
		if err := query.Decode(&queries); err != nil {
			return nil, err
		}
		md.ShodanQuery = &queries
	}

	if product := lookup(metadata, "product"); product != nil && product.Kind == yaml.ScalarNode {
		value := product.Value
		md.Product = &value
	}

	return tpl, nil
}

// lookup returns the value of the last occurrence of key in a mapping
// node, or nil when the node is not a mapping, the key is missing or the
// value is null.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	mapping = resolve(mapping)
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}

	var value *yaml.Node
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if k := resolve(mapping.Content[i]); k != nil && k.Kind == yaml.ScalarNode && k.Value == key {
			value = resolve(mapping.Content[i+1])
		}
	}
	if value == nil || isNull(value) {
		return nil
	}
	return value
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

// Entries applies the favicon extraction rules to a parsed template.
func (t *Template) Entries(path string) []*Entry {
	if t == nil || t.Info == nil || t.Info.Metadata == nil || t.Info.Metadata.ShodanQuery == nil {
		return nil
	}
	md := t.Info.Metadata

	var entries []*Entry
	for _, query := range *md.ShodanQuery {
		if !stringsutil.ContainsAny(query, FaviconHashKey) {
			continue
		}
		for _, hash := range HashTokens(query) {
			entry := &Entry{Template: path, Hash: hash}
			if md.Product != nil {
				entry.Product = *md.Product
				entry.HasProduct = true
			}
			entries = append(entries, entry)
		}
	}
	return entries
}

// HashTokens splits a shodan query on ':' and returns, in order, every
// token that is all numeric characters or starts with '-'.
func HashTokens(query string) []string {
	var tokens []string
	for _, part := range strings.Split(query, ":") {
		if isHashToken(part) {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

func isHashToken(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' {
		return true
	}
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
