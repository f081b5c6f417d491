package settings

import (
	_ "embed"
	"fmt"
	"os"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var embeddedDefaults []byte

// ParseDefaults decodes a defaults document and validates it.
func ParseDefaults(data []byte) (CompanySettings, error) {
	var doc CompanySettings
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return CompanySettings{}, fmt.Errorf("parse statutory defaults: %w", err)
	}
	if problems := Validate(doc); len(problems) > 0 {
		return CompanySettings{}, fmt.Errorf("invalid statutory defaults: %v", problems)
	}
	return doc, nil
}

// LoadDefaults reads path when set and falls back to the embedded file.
func LoadDefaults(path string) (CompanySettings, error) {
	if path == "" {
		return ParseDefaults(embeddedDefaults)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return CompanySettings{}, err
	}
	return ParseDefaults(data)
}

// MustEmbeddedDefaults is used by tests and tools that have no file to read.
func MustEmbeddedDefaults() CompanySettings {
	doc, err := ParseDefaults(embeddedDefaults)
	if err != nil {
		panic(err)
	}
	return doc
}
