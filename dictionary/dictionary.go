// Package dictionary loads the word → definition mapping that supplies
// the label set of the word graph.
//
// Two formats are accepted:
//
//	text  - one "word:definition" per line; the first colon separates.
//	        Lines without a colon, or with an empty word, are skipped.
//	yaml  - a single mapping of word to definition (.yaml / .yml files).
//
// Labels keep first-seen order so graphs built from the same file and seed
// are reproducible. A repeated word keeps its first position and takes the
// last definition.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping indicates a YAML dictionary whose document is not a mapping.
var ErrNotMapping = errors.New("dictionary: yaml document is not a mapping")

// separator splits a word from its definition.
const separator = ":"

// Dictionary is an ordered word → definition table.
type Dictionary struct {
	labels []string
	defs   map[string]string
}

// New returns an empty Dictionary.
func New() *Dictionary {
	return &Dictionary{defs: make(map[string]string)}
}

// Set records def for label. Empty labels are ignored.
func (d *Dictionary) Set(label, def string) {
	if label == "" {
		return
	}
	if _, ok := d.defs[label]; !ok {
		d.labels = append(d.labels, label)
	}
	d.defs[label] = def
}

// Labels returns the words in first-seen order.
func (d *Dictionary) Labels() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)
	return out
}

// Definition returns the definition of label.
func (d *Dictionary) Definition(label string) (string, bool) {
	def, ok := d.defs[label]
	return def, ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.labels)
}

// Load reads the dictionary at path, choosing the format by extension.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return Parse(f)
	}
}

// Parse reads the line-oriented "word:definition" format.
// Malformed lines are skipped; only read errors are returned.
func Parse(r io.Reader) (*Dictionary, error) {
	d := New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		word, def, ok := strings.Cut(strings.TrimSpace(line), separator)
		if !ok {
			continue
		}
		d.Set(strings.TrimSpace(word), strings.TrimSpace(def))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read: %w", err)
	}

	return d, nil
}

// ParseYAML reads a YAML mapping of word to definition, keeping key order.
// An empty document yields an empty Dictionary.
func ParseYAML(r io.Reader) (*Dictionary, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("dictionary: decode yaml: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	d := New()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		d.Set(strings.TrimSpace(key.Value), strings.TrimSpace(val.Value))
	}

	return d, nil
}
