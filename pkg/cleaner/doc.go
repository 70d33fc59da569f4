// Package cleaner strips unwanted declaration lines from fragment files so
// they can be compiled both standalone and through the master document.
//
// Matching is strictly line oriented: every Matcher sees one line at a time,
// anchored at the line start, and a matching line loses its content while its
// line terminator stays in place. Blank lines are never collapsed.
package cleaner
