// Package schemas holds the JSON Schemas for everything the CLI writes to stdout.
package schemas

import "embed"

// Schema file names.
const (
	Result   = "result.schema.json"
	Analysis = "analysis.schema.json"
	Error    = "error.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Load returns the raw content of a named schema file.
func Load(name string) ([]byte, error) {
	return files.ReadFile(name)
}
