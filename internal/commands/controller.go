// Package commands contains the CLI commands for the application
package commands

// Flags holds the values parsed from the command line.
type Flags struct {
	LogLevel   string
	OutputDir  string
	ImportPath string
	Jobs       int
}

// Controller dispatches CLI commands.
type Controller struct {
	Flags *Flags
}
