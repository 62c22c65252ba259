package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const schemaFileName = "config.schema.json"

// GenerateSchemaFile writes a JSON schema for Config next to the config
// file, so editors with schema support can validate and autocomplete it.
// Called automatically when a default config is created.
func GenerateSchemaFile() error {
	dir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("resolve config directory: %w", err)
	}

	schema := new(jsonschema.Reflector).Reflect(&Config{})
	schema.ID = "https://github.com/bnema/dimmer/config.schema.json"
	schema.Title = "Dimmer Browser Configuration"
	schema.Description = "Configuration schema for Dimmer, a minimal single-tab browser shell"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	path := filepath.Join(dir, schemaFileName)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("write schema file: %w", err)
	}

	fmt.Printf("Generated JSON schema: %s\n", path)
	return nil
}
