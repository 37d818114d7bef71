// Package format names the document formats the tools read and write and
// converts data objects between them.
//
// KeyValues text is the native format. JSON and YAML carry the reduced
// data model only: comments, conditionals and directives do not survive
// conversion.
//
// # Related Packages
//
//   - github.com/vdf-format/vdf/parse - KeyValues text to data
//   - github.com/vdf-format/vdf/encode - data to KeyValues text
//   - github.com/vdf-format/vdf/kv - JSON and YAML codecs
package format
