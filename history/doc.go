// Package history keeps a SQLite log of finished solves: parameters, terminal
// status, iteration count, last error and wall time. The schema is embedded
// and migrated on Open.
package history
