// Package chromcli holds the command-line plumbing of chromtool: layered
// configuration (flags over environment over TOML file), CSV input, JSON and
// PNG output, logging and the --watch loop.
package chromcli
