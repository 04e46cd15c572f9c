package nanoschema

import (
	"maps"
	"slices"
)

// Resolver maps logical fields to physical branch names.
type Resolver struct {
	fields map[string]tableField
}

func newResolver(tf tableFile) *Resolver {
	fields := make(map[string]tableField, len(tf.Fields))
	for name, f := range tf.Fields {
		if f.Default == "" {
			f.Default = name
		}
		fields[name] = f
	}

	return &Resolver{fields: fields}
}

// Resolve returns the branch holding field in samples described by v.
// A field absent from the table resolves to its own name.
func (r *Resolver) Resolve(field string, v Version) string {
	f, ok := r.fields[field]
	if !ok {
		return field
	}
	for _, rule := range f.Rules {
		if rule.When.matches(v) {
			return rule.Branch
		}
	}

	return f.Default
}

// Fields returns the table's field names in lexical order.
func (r *Resolver) Fields() []string {
	return slices.Sorted(maps.Keys(r.fields))
}
