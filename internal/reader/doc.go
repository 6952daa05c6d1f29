// Package reader loads a single CSV, XLSX or XLS file into a tabload.Table.
//
// Dispatch is on the lower-cased file extension through the closed Format
// enum; every Format is bound to exactly one parser. Parsers produce a header
// row plus raw string cells, and a shared pass then:
//   - names blank headers "Unnamed: <i>" and de-duplicates repeats as "name.1"
//   - maps null tokens ("", "NA", "null", ...) to nil
//   - infers one ColumnType per column (int, then float, then bool, else text)
//
// Excel workbooks contribute their first sheet only. File bytes are read
// through filesystem.FileSystemProvider, so no handle outlives a Load call.
package reader
