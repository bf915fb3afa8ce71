// Package workspace implements the file-backed helpers around text analysis:
// reading from the configured input directory, writing to the output
// directory, merging files with per-file headers, and timestamped backups.
//
// The workspace assumes single-writer, non-concurrent use per file path; no
// per-file locking is performed. Every operation logs filename and operation
// context and re-signals failures to the caller without retrying.
package workspace
