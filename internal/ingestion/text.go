// Package ingestion reads the text to humanize from the command line, a file, or stdin.
package ingestion

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Source identifies where input text came from.
type Source string

const (
	SourceArg   Source = "arg"
	SourceFile  Source = "file"
	SourceStdin Source = "stdin"
	SourceHTML  Source = "html"
)

// ReadInput returns the text to process. A positional argument wins, then a
// file path, then the whole of stdin read to end of stream.
func ReadInput(args []string, path string, stdin io.Reader) (string, Source, error) {
	if len(args) > 0 {
		return args[0], SourceArg, nil
	}

	if path != "" {
		text, err := ReadFile(path)
		return text, SourceFile, err
	}

	if stdin == nil {
		return "", SourceStdin, &InputError{Source: SourceStdin, Message: "no input stream"}
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", SourceStdin, &InputError{Source: SourceStdin, Message: "failed to read input", Cause: err}
	}
	return string(data), SourceStdin, nil
}

// ReadFile reads a whole text file.
func ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &InputError{Source: SourceFile, Message: fmt.Sprintf("file not found: %s", path), Cause: err}
		}
		return "", &InputError{Source: SourceFile, Message: fmt.Sprintf("failed to read file: %s", path), Cause: err}
	}
	return string(content), nil
}
