// Package yamlbind provides:
//
// - Typed binding of YAML documents onto Go structs (LoadAs/LoadInto)
// - LocalDateTime, a timezone-naive calendar datetime decoded from YAML timestamps
// - Date-aware, block-style encoding (Dump/DumpWith) that emits LocalDateTime as yyyy-MM-dd
// - A stable error model (ParseError/BindingError/RepresentationError carrying Issues)
//
// Design policy:
//   - The YAML engine (go.yaml.in/yaml/v3) does all tokenizing, tree building and emission.
//     This package only overrides timestamp coercion and output formatting.
//   - Options are explicit values passed per call; there is no package-level mutable state.
//   - Node walking helpers live under internal/, record types under model/.
//
// Typical usage:
//
//	srv, err := yamlbind.LoadAs[model.Server](text)
//	out, err := yamlbind.Dump(srv)
//
//	doc, err := yamlbind.Load(text) // map[string]any with LocalDateTime timestamps
//	js, err := yamlbind.ToJSON(text)
package yamlbind
