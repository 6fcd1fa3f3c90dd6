// Package config manages user-level settings stored at ~/.pip-setup/config.yaml.
// Settings provide defaults for the scaffold command's flags (root, dry,
// verbose, package_version) and can be overridden with PIP_SETUP_* variables.
// The file can be checked against an embedded JSON schema.
package config
