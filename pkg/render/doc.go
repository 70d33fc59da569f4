// Package render turns an ordered list of fragment names into the master
// document. The document skeleton is rendered once from the embedded
// master.tpl, then every Render call substitutes the inclusion block for the
// placeholder token.
package render
