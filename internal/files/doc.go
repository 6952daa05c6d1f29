// Package files groups file access for tabload:
//   - filesystem: filesystem abstraction with OS and in-memory implementations
//   - scanner: discovery of CSV and Excel files under a directory
package files
