// Package schemas validates CLI output against the embedded JSON Schemas.
package schemas

import (
	"fmt"
	"strings"

	schemafiles "github.com/jonathan/humanizer/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Schema != "" {
		sb.WriteString(fmt.Sprintf("validation against %s failed: ", ve.Schema))
	} else {
		sb.WriteString("validation failed: ")
	}
	for i, err := range ve.Errors {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return sb.String()
}

// ValidateResult validates a humanizer result document.
func ValidateResult(doc []byte) error {
	return validateEmbedded(schemafiles.Result, doc)
}

// ValidateAnalysis validates an analyze subcommand document.
func ValidateAnalysis(doc []byte) error {
	return validateEmbedded(schemafiles.Analysis, doc)
}

// ValidateError validates an error document.
func ValidateError(doc []byte) error {
	return validateEmbedded(schemafiles.Error, doc)
}

func validateEmbedded(name string, doc []byte) error {
	schema, err := schemafiles.Load(name)
	if err != nil {
		return &SchemaLoadError{Path: name, Message: "embedded schema not found", Cause: err}
	}

	err = validate(name, gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(doc))
	if verr, ok := err.(*ValidationError); ok {
		verr.Schema = name
	}
	return err
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate("(string schema)",
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewStringLoader(jsonContent))
}

func validate(path string, schemaLoader, documentLoader gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    path,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
