package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML content file on top of the default content.
// Sections the file omits keep their defaults. An empty path returns the defaults.
func Load(path string) (*Portfolio, error) {
	p := Default()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	if err := Decode(data, p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return p, nil
}

// Decode unmarshals YAML into p, rejecting unknown keys.
func Decode(data []byte, p *Portfolio) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		// an empty document leaves the defaults in place
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
