// Package cli defines the Cobra command tree for the pip-setup CLI. The root
// command scaffolds a project; version and config are registered as
// subcommands. Commands only handle flag parsing, configuration and output
// formatting, and delegate the filesystem work to internal/scaffold.
package cli
