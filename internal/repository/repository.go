// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Conventions:
//   - Point lookups return (nil, nil) when no row matches; an error always
//     means the query itself failed. The two are never conflated.
//   - Driver errors are wrapped with %w so callers can classify them with
//     the sqlerr package.
//   - Inserts take named-field param structs; values are mapped to
//     positional placeholders only at the query boundary.
package repository
