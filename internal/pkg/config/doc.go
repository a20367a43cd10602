// Package config loads and validates application settings.
//
// Settings come from a YAML file with environment variable overrides and
// are validated before use, so misconfiguration fails at startup rather
// than at request time.
package config
