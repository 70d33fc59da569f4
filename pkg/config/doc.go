// Package config holds the settings a subfiles run depends on: where the
// fragments live, which files qualify, where the master document goes and how
// its skeleton is parameterised. Default returns the layout the generators
// have always used; FromEnv lets callers overlay SUBFILES_* variables.
package config
