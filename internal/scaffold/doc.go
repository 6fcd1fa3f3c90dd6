// Package scaffold lays out a minimal pip-installable Python project. It
// powers the root "pip-setup <name>" command: it ensures the fixed project
// skeleton exists under <root>/<name>/ and then renders the embedded
// setup.py and entry-point templates into it.
package scaffold
