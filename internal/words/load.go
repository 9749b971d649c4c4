package words

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

//go:embed data/words.json
var defaultData []byte

//go:embed data/words.schema.json
var schemaData []byte

const schemaURL = "schema://words.json"

// MinVersion is the oldest database format this build understands.
const MinVersion = "1.0.0"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// LoadError describes a word database that could not be used.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load word database %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Default returns the embedded word database.
func Default() (*Database, error) {
	db, err := Parse(defaultData)
	if err != nil {
		return nil, &LoadError{Source: "(embedded)", Err: err}
	}
	return db, nil
}

// Load reads and validates the database at path. An empty path returns
// the embedded default.
func Load(path string) (*Database, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	db, err := Parse(raw)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return db, nil
}

// Parse validates raw JSON against the database schema, checks the
// version, and decodes it.
func Parse(raw []byte) (*Database, error) {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := databaseSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var db Database
	if err := json.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := checkVersion(db.Version); err != nil {
		return nil, err
	}
	return &db, nil
}

func checkVersion(v string) error {
	sv := canonical(v)
	if !semver.IsValid(sv) {
		return fmt.Errorf("version %q is not a semantic version", v)
	}
	if semver.Compare(semver.Major(sv), semver.Major(canonical(MinVersion))) != 0 {
		return fmt.Errorf("version %q is incompatible: need major %s", v, semver.Major(canonical(MinVersion)))
	}
	if semver.Compare(sv, canonical(MinVersion)) < 0 {
		return fmt.Errorf("version %q is older than %s", v, MinVersion)
	}
	return nil
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

func databaseSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
