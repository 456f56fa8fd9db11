// Package cli provides the command-line interface for vic.
package cli

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	EditCommand    EditCommand    `command:"edit" description:"edit text in the terminal" subcommands-optional:"true"`
	ReplayCommand  ReplayCommand  `command:"replay" description:"feed keys to the editor without a terminal and print the resulting state" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" description:"show the program version" subcommands-optional:"true"`
}

var Opts CommandLineOpts
