// Package metadata extracts presentation identity from the two sources a
// presentation folder may carry.
//
// # Manifest
//
// package.json is decoded field by field. Only name, title, displayName and
// scripts are consumed; anything else in the document is ignored, and a field
// holding the wrong JSON type is treated as absent rather than as an error.
// Syntax errors come back as *MetadataError with the line and column of the
// offending byte.
//
// # Slides
//
// InferTitle looks for the first meaningful line of slides.md that is either a
// frontmatter-style "title:" line or a level-one "# " heading:
//
//	---
//	theme: default
//	title: Quarterly Review   <- wins
//	---
//	# Agenda
//
// Lines are trimmed before matching, so indented "title:" lines count.
package metadata
