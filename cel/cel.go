// Package cel filters hash map entries with CEL (Common Expression Language) predicates.
package cel

import (
	"fmt"
	"reflect"

	"github.com/google/cel-go/cel"

	"github.com/sharedcode/dstruct"
	"github.com/sharedcode/dstruct/hashmap"
)

// Predicate holds a compiled boolean CEL expression over the variables `key` and `value`.
type Predicate struct {
	Expression string
	program    cel.Program
}

// NewPredicate compiles expression, e.g. `value > 10 && key.startsWith("a")`.
// Keys and values are passed to CEL as dynamic values, so they should be CEL-native types: numbers,
// strings, booleans, lists or string keyed maps.
func NewPredicate(expression string) (*Predicate, error) {
	if expression == "" {
		return nil, dstruct.NewError(dstruct.InvalidArgument, dstruct.ErrInvalidArgument, "expression can't be empty string")
	}

	env, err := cel.NewEnv(
		cel.Variable("key", cel.DynType),
		cel.Variable("value", cel.DynType),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating CEL environment: %w", err)
	}

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("error compiling CEL expression: %w", issues.Err())
	}
	p, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("error creating Program: %w", err)
	}
	return &Predicate{
		Expression: expression,
		program:    p,
	}, nil
}

// Match evaluates the predicate against one entry.
func (p *Predicate) Match(key, value any) (bool, error) {
	out, _, err := p.program.Eval(map[string]any{
		"key":   key,
		"value": value,
	})
	if err != nil {
		return false, fmt.Errorf("error evaluating CEL expression: %w", err)
	}
	nv, err := out.ConvertToNative(reflect.TypeOf(true))
	if err != nil {
		return false, fmt.Errorf("error ConvertToNative, got err: %w", err)
	}
	return nv.(bool), nil
}

// Filter returns the entries of m matching p, in the map's iteration order.
// Evaluation stops at the first error.
func Filter[K comparable, V any](m *hashmap.HashMap[K, V], p *Predicate) ([]dstruct.KeyValuePair[K, V], error) {
	var r []dstruct.KeyValuePair[K, V]
	for k, v := range m.All() {
		ok, err := p.Match(k, v)
		if err != nil {
			return nil, err
		}
		if ok {
			r = append(r, dstruct.KeyValuePair[K, V]{Key: k, Value: v})
		}
	}
	return r, nil
}
