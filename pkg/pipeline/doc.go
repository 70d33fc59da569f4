// Package pipeline wires the lister → cleaner → renderer → writer sequence
// behind a single Run call. Every step runs synchronously and in order; the
// cleaner step only runs when a Cleaner is supplied.
package pipeline
