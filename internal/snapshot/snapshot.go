// Package snapshot persists and restores a session's durable program
// across process invocations. The durable program is serialized as the
// ordered list of definition-submission source texts that produced it,
// not as parsed AST — replaying each source string through
// session.Session.Submit rebuilds identical semantic and runtime tables,
// which is simpler and more robust than trying to serialize the AST or
// the class runtime directly.
//
// Uses gopkg.in/yaml.v3 for the on-disk document.
package snapshot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk shape of a saved session: the program's
// accumulated definitions, oldest first, plus a human-readable
// annotation of how many there are (purely informational; Definitions
// is the only field Load actually needs).
type Document struct {
	Count       int      `yaml:"count"`
	Definitions []string `yaml:"definitions"`
}

// Save writes sources to path as a YAML Document.
func Save(path string, sources []string) error {
	doc := Document{Count: len(sources), Definitions: sources}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("snapshot: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("snapshot: write %s: %w", path, err)
	}
	return nil
}

// Load reads path back into its ordered list of definition source texts.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("snapshot: unmarshal %s: %w", path, err)
	}
	return doc.Definitions, nil
}
