package extract

import (
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/coral-mesh/profattr/internal/aggregation/attribute"
)

// rowFilter evaluates a CEL expression against the attributes of one result
// object. Every attribute defined for the representation is bound as a
// variable named by its key: text as string, counts as int, times as
// duration, shares as a fraction and percent-point deltas in points.
type rowFilter[T any] struct {
	program    cel.Program
	attrs      []attribute.Attribute
	extractors []attribute.Extractor[T]
}

func newRowFilter[T any](expr string, shape attribute.Shape[T]) (*rowFilter[T], error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}

	f := &rowFilter[T]{}
	var opts []cel.EnvOption
	for _, a := range attribute.Attributes() {
		ext, err := attribute.Lookup(a, shape)
		if err != nil {
			continue
		}
		f.attrs = append(f.attrs, a)
		f.extractors = append(f.extractors, ext)
		opts = append(opts, cel.Variable(a.Key(), celType(a.Kind())))
	}

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create filter environment: %w", err)
	}

	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		return nil, fmt.Errorf("invalid filter: %w", iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("invalid filter: expression must be boolean, got %s", ast.OutputType())
	}

	f.program, err = env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	return f, nil
}

func celType(k attribute.ValueKind) *cel.Type {
	switch k {
	case attribute.Text:
		return cel.StringType
	case attribute.Count:
		return cel.IntType
	case attribute.Duration:
		return cel.DurationType
	default:
		return cel.DoubleType
	}
}

// match reports whether item satisfies the filter. A nil filter matches
// everything.
func (f *rowFilter[T]) match(item T) (bool, error) {
	if f == nil {
		return true, nil
	}

	vars := make(map[string]any, len(f.attrs))
	for i, a := range f.attrs {
		vars[a.Key()] = celValue(f.extractors[i](item))
	}

	out, _, err := f.program.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}
	ok, isBool := out.Value().(bool)
	if !isBool {
		return false, fmt.Errorf("filter returned %T, want bool", out.Value())
	}
	return ok, nil
}

func celValue(v attribute.Value) any {
	switch v.Kind() {
	case attribute.Text:
		return v.Text()
	case attribute.Count:
		return v.Count()
	case attribute.Duration:
		return v.Duration()
	case attribute.PercentPointDelta:
		return v.PercentPoints()
	default:
		return v.Float()
	}
}
