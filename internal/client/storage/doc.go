// Package storage implements the local key-value store backing the session:
// a single SQLite table holding the persisted access token and user record.
package storage
