package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const schemaURL = "config.schema.json"

//go:embed schema/config.schema.json
var schemaBytes []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error

	printer = message.NewPrinter(language.English)
)

// ValidationResult is the outcome of checking a config file.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one schema violation.
type ValidationIssue struct {
	Path    string // Offending key as a JSON pointer, e.g. "/http_timeout"
	Message string
	Keyword string // Failing schema keyword
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			schemaErr = fmt.Errorf("decoding embedded schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("registering schema: %w", err)
			return
		}
		if schema, err = c.Compile(schemaURL); err != nil {
			schemaErr = fmt.Errorf("compiling schema: %w", err)
		}
	})
	return schema, schemaErr
}

// Validate checks YAML config bytes against the embedded schema. Parse and
// schema failures are returned as errors; violations land in the result.
func Validate(data []byte) (*ValidationResult, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}

	// Round-trip through JSON so the validator sees JSON number and map types.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("config must be a mapping of string keys: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	var ve *jsonschema.ValidationError
	switch err := sch.Validate(inst); {
	case err == nil:
		return &ValidationResult{Valid: true}, nil
	case errors.As(err, &ve):
		return &ValidationResult{Issues: leafIssues(ve)}, nil
	default:
		return nil, fmt.Errorf("validating config: %w", err)
	}
}

// ValidateFile reads and validates the config file at path.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Validate(data)
}

// leafIssues flattens the error tree to its leaves, sorted by key. The
// schema is flat, so every leaf names one offending key.
func leafIssues(root *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	var walk func(*jsonschema.ValidationError)
	walk = func(ve *jsonschema.ValidationError) {
		if len(ve.Causes) > 0 {
			for _, c := range ve.Causes {
				walk(c)
			}
			return
		}
		issue := ValidationIssue{Message: ve.Error()}
		if len(ve.InstanceLocation) > 0 {
			issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		if ve.ErrorKind != nil {
			issue.Message = ve.ErrorKind.LocalizedString(printer)
			if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
				issue.Keyword = kw[len(kw)-1]
			}
		}
		issues = append(issues, issue)
	}
	walk(root)

	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Path < issues[j].Path })
	return issues
}
