// Package session owns the authentication lifecycle: restoring a persisted
// session at startup, logging in against the remote service, and logging
// out. The persisted credential pair (access token + user record) is always
// written and cleared as a unit; a partial pair reads back as "no session".
package session
