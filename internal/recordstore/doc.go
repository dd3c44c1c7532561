// Package recordstore persists memos in a local SQLite file.
//
// # Layout
//
// One table holds every memo:
//
//	memos(id TEXT PRIMARY KEY, text TEXT, date INTEGER, color TEXT)
//
// Dates are stored as Unix nanoseconds. The schema version lives in SQLite's
// user_version pragma. Open accepts the current version or the one directly
// before it (the tag is bumped, the data is left alone); anything else is an
// *OpenError wrapping ErrVersionMismatch.
//
// # Writes
//
// Add, Update and Delete each run in their own transaction. A failure rolls
// back and comes back as a *WriteError, so callers never observe a half
// applied change. Update and Delete on an id that does not exist succeed
// without doing anything.
//
// # Failed opens
//
// Open returns no store on failure. Callers that want to keep running can use
// a zero Store, which answers reads with empty results and ignores writes, so
// the open failure is reported once instead of on every call.
package recordstore
