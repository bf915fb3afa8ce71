// Package history persists analysis results in SQLite so past runs can be
// listed and compared.
//
// The Store manages the database connection, schema initialization, and busy
// retries. A flock file beside the database enforces the single-writer
// assumption across processes. The database is a convenience record of recent
// analyses rather than a long-term archive; schema changes bump the version in
// schema.go and users clear the database to adopt the new schema.
package history
