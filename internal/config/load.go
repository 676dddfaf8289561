package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Load reads a YAML parameter file on top of DefaultParams.
// Keys missing from the file keep their default values.
func Load(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("failed to read parameter file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML parameter data on top of DefaultParams.
func Parse(data []byte) (Params, error) {
	params := DefaultParams()
	if err := yaml.UnmarshalStrict(data, &params); err != nil {
		return Params{}, fmt.Errorf("failed to parse parameters: %w", err)
	}
	if err := params.CheckLegalValues(); err != nil {
		return Params{}, err
	}
	return params, nil
}
