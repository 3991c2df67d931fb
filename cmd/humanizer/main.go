// Package main provides the entry point for the humanizer CLI.
package main

import (
	"io"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.LookupEnv))
}

// execute runs the command tree and returns the process exit status. Any
// error becomes the single JSON error line on stdout.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) int {
	rootCmd := newRootCmd(lookupEnv)
	rootCmd.SetArgs(positionalText(rootCmd, args))
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		writeError(stdout, err)
		return 1
	}
	return 0
}
