// Package migrations contains all database migration files.
// Each file registers itself via init(); the CLI blank-imports this package
// so everything is registered at startup.
package migrations
