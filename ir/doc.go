// Package ir provides the value tree rendered by package encode.
//
// # Overview
//
// A Node represents a single value in a YAML document. The tree is built and
// owned by the caller, either programmatically or by package parse; encoders
// only read it.
//
// The IR works as a recursive tagged union structure, where values are placed
// in fields depending on the node type.
//
// # Node Types
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64, float64 or preformatted text)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//   - AliasType: reference to an anchored node, by name
//
// Any node may carry an Anchor name.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "tags", Val: ir.FromSlice([]*ir.Node{ir.FromString("a")})},
//	})
//	base := ir.FromMap(map[string]*ir.Node{"x": ir.FromInt(1)}).WithAnchor("base")
//	ref := ir.FromAlias("base")
//
// # IR Structure Constraints
//
// For ObjectType nodes, Fields[i] is the StringType key for the value at
// Values[i]. FromKeyVals keeps the given order, FromMap sorts keys.
//
// Number values are placed under Int64 if integral and representable, Float64
// if floating point, and Number as a textual fallback otherwise.
//
// An AliasType node keeps the anchor name it refers to in String. Nothing
// checks that the anchor exists or that references are acyclic; ToAny reports
// dangling aliases.
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships (Parent, ParentIndex,
// ParentField). Path returns a JSONPath-style location and GetPath resolves
// one:
//
//	child, err := node.GetPath("$.spec.containers[0]")
//
// # Thread Safety
//
// Node structures are not thread-safe. Clone nodes for each goroutine which
// mutates them.
//
// # Related Packages
//
//   - github.com/signadot/yamlenc/parse - Parses text into IR nodes
//   - github.com/signadot/yamlenc/encode - Encodes IR nodes to YAML
package ir
