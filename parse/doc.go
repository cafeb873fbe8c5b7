// Package parse decodes YAML (and JSON) text into ir nodes.
//
// # Usage
//
//	node, err := parse.Parse(data)
//	docs, err := parse.ParseAll(data, parse.ExpandAliases(true))
//
// Parsing is delegated to github.com/goccy/go-yaml; this package only maps its
// syntax tree onto ir.Node. Tags are dropped and merge keys are kept as
// ordinary "<<" keys. Mapping keys of any scalar type become string keys.
//
// # Related Packages
//
//   - github.com/signadot/yamlenc/ir - IR representation
//   - github.com/signadot/yamlenc/encode - Encode IR to YAML
package parse
