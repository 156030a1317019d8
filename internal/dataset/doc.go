// Package dataset reads and writes the JSON documents the analysis commands
// operate on.
//
// The primary document is an object with a "videos" array; each video has an
// "id" and a "models" object keyed by source label. The secondary document is
// an object with a "results" array carrying per-video metadata such as
// duration.
//
// Decoding keeps every member the package does not interpret, in document
// order, so rewriting the primary file changes only the fields a caller sets.
package dataset
