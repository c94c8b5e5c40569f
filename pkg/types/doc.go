// Package types defines the validated value types, the contact Record,
// the Directory that holds records by name, and the standard errors
// returned by each of them.
package types
