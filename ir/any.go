package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// ToAny converts node to plain Go values: map[string]any, []any, string,
// int64, float64, bool and nil. Aliases are replaced by the value of the
// closest preceding anchor of the same name, in document order.
func ToAny(node *Node) (any, error) {
	anchors := map[string]any{}
	return toAny(node, anchors)
}

func toAny(node *Node, anchors map[string]any) (any, error) {
	var (
		res any
		err error
	)
	switch node.Type {
	case ObjectType:
		m := make(map[string]any, len(node.Fields))
		for i, field := range node.Fields {
			m[field.String], err = toAny(node.Values[i], anchors)
			if err != nil {
				return nil, err
			}
		}
		res = m
	case ArrayType:
		a := make([]any, len(node.Values))
		for i, elt := range node.Values {
			a[i], err = toAny(elt, anchors)
			if err != nil {
				return nil, err
			}
		}
		res = a
	case StringType:
		res = node.String
	case NumberType:
		switch {
		case node.Int64 != nil:
			res = *node.Int64
		case node.Float64 != nil:
			res = *node.Float64
		default:
			res = json.Number(node.Number)
		}
	case BoolType:
		res = node.Bool
	case NullType:
		res = nil
	case AliasType:
		v, ok := anchors[node.String]
		if !ok {
			return nil, fmt.Errorf("%w: alias %q at %s has no anchor", ErrPath, node.String, node.Path())
		}
		res = v
	default:
		panic("impossible production")
	}
	if node.Anchor != "" {
		anchors[node.Anchor] = res
	}
	return res, nil
}

// FromAny converts plain Go values, such as those produced by ToAny,
// encoding/json or an expression evaluator, into a node tree. Map keys are
// sorted.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		if strings.ContainsAny(x.String(), ".eE") {
			if f, err := x.Float64(); err == nil && !math.IsInf(f, 0) {
				return FromFloat(f), nil
			}
		}
		return FromNumber(x.String()), nil
	case []any:
		vals := make([]*Node, len(x))
		for i, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case map[string]any:
		kvs := make([]KeyVal, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KeyVal{Key: k, Val: n})
		}
		return FromKeyVals(kvs), nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) (*Node, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return FromNumber(strconv.FormatUint(u, 10)), nil
		}
		return FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return fromReflect(rv.Elem())
	case reflect.Slice, reflect.Array:
		vals := make([]*Node, rv.Len())
		for i := range rv.Len() {
			n, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrUnsupported, rv.Type().Key())
		}
		m := make(map[string]*Node, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			n, err := FromAny(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			m[iter.Key().String()] = n
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, rv.Interface())
	}
}
