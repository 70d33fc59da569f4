// Package template defines the engine contract the document renderer relies
// on. Implementations live in subpackages; gotemplate provides the pongo2
// backed engine used for the master document skeleton.
package template
