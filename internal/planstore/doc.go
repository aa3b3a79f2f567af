// Package planstore archives decoded treatment plans in SQLite.
//
// Each import stores summary columns for listing (patient, plan, course,
// field and control point counts, source path, content hash) next to the full
// plan as JSON, so `rtpkit plans show` can reproduce the decode without the
// original file. Content hashes are unique: importing the same file twice
// returns the existing entry with ErrAlreadyImported. Imports from concurrent
// processes are serialised with an advisory file lock next to the database.
package planstore
