package parse

type parseOpts struct {
	expandAliases bool
}

type ParseOption func(*parseOpts)

// ExpandAliases replaces each alias with a copy of the node it refers to and
// drops anchor names. Aliases to undefined anchors are then an error.
func ExpandAliases(v bool) ParseOption {
	return func(o *parseOpts) { o.expandAliases = v }
}
