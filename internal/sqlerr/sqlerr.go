// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database driver and
// converts them into user-friendly messages (e.g., converting
// a "unique violation" on the users table into a "Bad Request"
// error with the code USER_ALREADY_EXISTS).
package sqlerr
