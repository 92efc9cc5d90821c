// Where: internal/infra/config/schema.go
// What: JSON schema validation for the config file.
// Why: Report unknown keys and wrong types before decoding.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/poruru/housekeeper/assets"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

const schemaURL = "https://housekeeper.local/config.schema.json"

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func validateSchema(payload []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}

	jsonData, err := yaml.YAMLToJSON(payload)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("invalid: %w", err)
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(assets.ConfigSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
