package ir

// Truth reports whether node is truthy: non-empty containers and strings,
// non-zero numbers and true. Aliases are always truthy.
func Truth(node *Node) bool {
	switch node.Type {
	case ObjectType:
		return len(node.Fields) != 0
	case ArrayType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64 != 0
		}
		if node.Float64 != nil {
			return *node.Float64 != 0.0
		}
		return node.Number != "" && node.Number != "0"
	case BoolType:
		return node.Bool
	case AliasType:
		return true
	case NullType:
		return false
	default:
		panic("type")
	}
}
