// Package larder exposes project-level metadata.
package larder

// Version is the larder release version, reported by the CLI.
const Version = "0.1.0"
