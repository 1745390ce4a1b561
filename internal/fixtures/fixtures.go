// Package fixtures loads the YAML wire-format test corpus shared by
// parse_test.go, fuzz_test.go and cmd/tmi-bench.
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one entry in the wire-format corpus: a raw input line plus the
// expectations a test checks it against.
type Case struct {
	Name string `yaml:"name"`

	// Line is the raw wire line, CRLF already stripped, exactly as Parse
	// expects it.
	Line string `yaml:"line"`

	// ParseFails marks a case where Parse itself is expected to report
	// false (no command segment present).
	ParseFails bool `yaml:"parse_fails"`

	Command string `yaml:"command"`

	HasChannel bool   `yaml:"has_channel"`
	Channel    string `yaml:"channel"`

	// Tags, when non-empty, lists tag-name/expected-raw-value pairs checked
	// via Frame.RawTag after Parse. Values are the still-escaped wire bytes;
	// unescaping has its own tests in escape_test.go.
	Tags map[string]string `yaml:"tags"`
}

// document is the top-level shape of corpus.yaml.
type document struct {
	Cases []Case `yaml:"cases"`
}

// Load reads and parses the corpus at path.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("fixtures: parsing %q: %w", path, err)
	}
	return doc.Cases, nil
}
