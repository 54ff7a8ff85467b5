// Package registry holds the application catalogue.
//
// The catalogue starts with the built-in apps and can be extended at startup
// from YAML or TOML files matched by a doublestar pattern. Each file holds
// either a single definition or a list under "apps". Definitions are
// immutable after seeding.
package registry
