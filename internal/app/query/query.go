// Package query filters the entities of a resource slice with boolean
// expressions written in the expr language (github.com/expr-lang/expr).
//
// Each entity is evaluated as the expression environment, so its fields are
// top-level variables:
//
//	f := query.NewFilter()
//	active, err := f.Apply(state, `role == "admin" && age >= 30`)
//
// Numbers decoded as json.Number are compared as int64 or float64. Fields
// missing from an entity evaluate to nil. An entity whose evaluation
// fails at run time, such as comparing nil with a number, does not match.
// Compiled programs are cached per expression source.
package query

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain"
	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
)

// maxCachedPrograms bounds the program cache. The cache is cleared when full.
const maxCachedPrograms = 256

// Filter evaluates where-expressions against slice entities. Safe for
// concurrent use.
type Filter struct {
	mu       sync.Mutex
	programs map[string]*vm.Program
}

// NewFilter creates a Filter with an empty program cache.
func NewFilter() *Filter {
	return &Filter{programs: make(map[string]*vm.Program)}
}

// Apply returns the entities of s, in result order, for which where
// evaluates to true. An empty where returns every entity.
//
// Compile errors and non-boolean results wrap domain.ErrValidation.
func (f *Filter) Apply(s resource.State, where string) ([]resource.Entity, error) {
	entities := s.List()
	if strings.TrimSpace(where) == "" {
		return entities, nil
	}

	program, err := f.compile(where)
	if err != nil {
		return nil, err
	}

	out := make([]resource.Entity, 0, len(entities))
	for _, e := range entities {
		ok, err := eval(program, where, e)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *Filter) compile(where string) (*vm.Program, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if p, ok := f.programs[where]; ok {
		return p, nil
	}

	p, err := expr.Compile(where, expr.AsBool())
	if err != nil {
		return nil, &domain.ValidationError{
			Fields: map[string]string{"where": err.Error()},
		}
	}

	if len(f.programs) >= maxCachedPrograms {
		clear(f.programs)
	}
	f.programs[where] = p
	return p, nil
}

func eval(program *vm.Program, where string, e resource.Entity) (bool, error) {
	result, err := expr.Run(program, env(e))
	if err != nil {
		return false, nil //nolint:nilerr // run-time type errors exclude the entity
	}

	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("query: expression %q returned %T, expected bool: %w", where, result, domain.ErrValidation)
	}
	return b, nil
}

// env returns e with json.Number values, at any depth, replaced by int64
// when integral and float64 otherwise. e itself is not modified.
func env(e resource.Entity) map[string]any {
	out := make(map[string]any, len(e))
	for k, v := range e {
		out[k] = numeric(v)
	}
	return out
}

func numeric(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		return env(t)
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = numeric(el)
		}
		return out
	default:
		return v
	}
}
