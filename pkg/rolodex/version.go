// Package rolodex holds build-level constants shared by the CLI.
package rolodex

// Version is the current rolodex release.
const Version = "0.1.0"
