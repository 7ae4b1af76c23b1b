package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Load reads a corpus JSON file, validates it against the corpus schema,
// and returns the parsed Corpus.
func Load(path string) (*Corpus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	return Parse(raw)
}

// Parse validates and parses raw corpus JSON.
func Parse(raw []byte) (*Corpus, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile corpus schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("corpus validation failed: %w", err)
	}

	var subjects map[string]map[string][]string
	if err := json.Unmarshal(raw, &subjects); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}

	return New(subjects), nil
}

// getCompiledSchema compiles the corpus schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(fileSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://corpus.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}

		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
