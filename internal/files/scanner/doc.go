// Package scanner discovers candidate data files for a folder merge.
//
// The scanner package is responsible for:
//   - Listing direct children of a directory, or walking its full subtree
//   - Keeping regular files whose extension is .csv, .xlsx or .xls (any case)
//   - Reporting a missing root as tabload.ErrNotFound
//
// An empty result is not an error here; the merge coordinator decides what
// an empty directory means. Listing order is lexical, which makes the first
// file (the consistency reference) deterministic.
//
// The scanner is filesystem-agnostic through the filesystem.FileSystemProvider
// interface, enabling both production use with the OS filesystem and testing
// with in-memory filesystems.
package scanner
