// Package filesystem abstracts the directory listing, walking and file
// reading that discovery and the table reader need.
//
// OSFileSystem is the host implementation. MemoryFileSystem holds a virtual
// tree so the whole load pipeline can run in tests without touching disk.
package filesystem
