package storage

import "strings"

// New selects a provider for the configured store path: a single-file
// SQLite store when the path ends in .db, the JSON day store otherwise.
func New(path string) Provider {
	if strings.HasSuffix(path, ".db") {
		return NewSQLiteStore(path)
	}
	return NewDayStore(path)
}
