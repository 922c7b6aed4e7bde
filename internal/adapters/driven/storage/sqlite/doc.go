// Package sqlite implements the artifact store on a local SQLite
// database. The store opens lazily on first use: construction never
// touches the disk, concurrent first-callers converge on a single
// connection, and the schema is created or upgraded via embedded,
// versioned migrations.
package sqlite
