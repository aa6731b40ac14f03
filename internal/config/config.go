// Package config loads preprocessor settings from a YAML file.
//
// A configuration file looks like:
//
//	collision: first   # first | last | drop
//	blank: empty       # empty | spaces
//	format: yaml       # yaml | json | table
//
// Every key is optional. The document is validated against an embedded JSON
// schema before it is decoded.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/gogpu/shaderui/uicontrol"
)

//go:embed schemas/config_schema.json
var configSchema string

// DefaultFile is the configuration file name looked up in the working
// directory when none is given.
const DefaultFile = ".shaderui.yaml"

// Output formats for the controls mapping.
const (
	FormatYAML  = "yaml"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Config holds preprocessor and CLI settings.
type Config struct {
	Collision string `yaml:"collision"`
	Blank     string `yaml:"blank"`
	Format    string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Collision: uicontrol.KeepFirst.String(),
		Blank:     uicontrol.BlankEmpty.String(),
		Format:    FormatYAML,
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional behaves like Load but returns Default when path does not
// exist.
func LoadOptional(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes and validates a YAML configuration document. Keys missing
// from data keep their default value.
func Parse(data []byte) (Config, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := validateWithSchema(doc); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Options converts the settings to parser options.
func (c Config) Options() (uicontrol.Options, error) {
	opts := uicontrol.DefaultOptions()

	collision, err := uicontrol.ParseCollisionPolicy(c.Collision)
	if err != nil {
		return opts, err
	}
	blank, err := uicontrol.ParseBlankMode(c.Blank)
	if err != nil {
		return opts, err
	}

	opts.Collision = collision
	opts.Blank = blank
	return opts, nil
}

// validateWithSchema validates a decoded document against the embedded schema.
func validateWithSchema(doc map[string]any) error {
	compiler := jsonschema.NewCompiler()

	var schemaDoc any
	if err := json.Unmarshal([]byte(configSchema), &schemaDoc); err != nil {
		return fmt.Errorf("failed to parse config schema: %w", err)
	}

	schemaURL := "file:///shaderui/config_schema.json"
	if err := compiler.AddResource(schemaURL, schemaDoc); err != nil {
		return fmt.Errorf("failed to add config schema: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("failed to compile config schema: %w", err)
	}

	// Round-trip through JSON so YAML scalar types match what the validator
	// expects. An empty document is an empty object.
	if doc == nil {
		doc = make(map[string]any)
	}
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(docJSON, &normalized); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := schema.Validate(normalized); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}
