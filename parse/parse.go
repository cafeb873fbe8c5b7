package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/signadot/yamlenc/debug"
	"github.com/signadot/yamlenc/ir"
)

// Parse returns the first document in d. Empty input is a null document.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	docs, err := ParseAll(d, opts...)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return ir.Null(), nil
	}
	return docs[0], nil
}

// ParseAll returns every document in d.
func ParseAll(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	file, err := parser.ParseBytes(d, parser.Mode(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	res := make([]*ir.Node, 0, len(file.Docs))
	for i, doc := range file.Docs {
		c := &converter{opts: pOpts, anchors: map[string]*ir.Node{}}
		node, err := c.node(doc.Body)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		if debug.Parse() {
			debug.Logf("parsed document %d: %s\n", i, node)
		}
		res = append(res, node)
	}
	return res, nil
}

type converter struct {
	opts    *parseOpts
	anchors map[string]*ir.Node
}

func (c *converter) node(n ast.Node) (*ir.Node, error) {
	if n == nil {
		return ir.Null(), nil
	}
	switch x := n.(type) {
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.BoolNode:
		return ir.FromBool(x.Value), nil
	case *ast.IntegerNode:
		switch v := x.Value.(type) {
		case int64:
			return ir.FromInt(v), nil
		case uint64:
			if v <= math.MaxInt64 {
				return ir.FromInt(int64(v)), nil
			}
			return ir.FromNumber(strconv.FormatUint(v, 10)), nil
		default:
			return ir.FromNumber(x.GetToken().Value), nil
		}
	case *ast.FloatNode:
		return ir.FromFloat(x.Value), nil
	case *ast.InfinityNode:
		return ir.FromFloat(x.Value), nil
	case *ast.NanNode:
		return ir.FromFloat(math.NaN()), nil
	case *ast.StringNode:
		return ir.FromString(x.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(x.Value.Value), nil
	case *ast.TagNode:
		return c.node(x.Value)
	case *ast.SequenceNode:
		vals := make([]*ir.Node, len(x.Values))
		for i, v := range x.Values {
			val, err := c.node(v)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	case *ast.MappingNode:
		return c.mapping(x.Values)
	case *ast.MappingValueNode:
		return c.mapping([]*ast.MappingValueNode{x})
	case *ast.AnchorNode:
		val, err := c.node(x.Value)
		if err != nil {
			return nil, err
		}
		name := strings.TrimPrefix(x.Name.GetToken().Value, "&")
		c.anchors[name] = val
		if c.opts.expandAliases {
			return val, nil
		}
		return val.WithAnchor(name), nil
	case *ast.AliasNode:
		name := strings.TrimPrefix(x.Value.GetToken().Value, "*")
		if !c.opts.expandAliases {
			return ir.FromAlias(name), nil
		}
		target, ok := c.anchors[name]
		if !ok {
			return nil, fmt.Errorf("%w: *%s", ErrAlias, name)
		}
		res := target.Clone()
		res.Parent = nil
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, n.Type())
	}
}

func (c *converter) mapping(mvs []*ast.MappingValueNode) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, len(mvs))
	for i, mv := range mvs {
		k, err := c.key(mv.Key)
		if err != nil {
			return nil, err
		}
		v, err := c.node(mv.Value)
		if err != nil {
			return nil, err
		}
		kvs[i] = ir.KeyVal{Key: k, Val: v}
	}
	return ir.FromKeyVals(kvs), nil
}

func (c *converter) key(k ast.Node) (string, error) {
	switch x := k.(type) {
	case nil:
		return "", nil
	case *ast.StringNode:
		return x.Value, nil
	case *ast.MappingKeyNode:
		return c.key(x.Value)
	case *ast.TagNode:
		return c.key(x.Value)
	case *ast.MergeKeyNode:
		return "<<", nil
	case *ast.NullNode, *ast.BoolNode, *ast.IntegerNode, *ast.FloatNode,
		*ast.InfinityNode, *ast.NanNode:
		return x.GetToken().Value, nil
	default:
		return "", fmt.Errorf("%w: %s as mapping key", ErrUnsupported, k.Type())
	}
}
