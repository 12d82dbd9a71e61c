package manifest

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed manifest.schema.json
var schemaBytes []byte

const schemaURL = "mem://schemas/manifest.schema.json"

var (
	compileOnce sync.Once
	schema      *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles the embedded manifest schema once.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("decode manifest schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("register manifest schema: %w", err)
			return
		}

		schema, compileErr = c.Compile(schemaURL)
	})
	return schema, compileErr
}
