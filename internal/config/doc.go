// Package config loads minpath CLI settings: a YAML file layered over
// built-in defaults, then MINPATH_* environment overrides. Command-line flags
// are applied last by the cli package.
package config
