// Copyright 2024 The relplan Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sql holds the types shared across the translator: the schema
// and field model, the catalog interface the translator queries, and the
// error-kind taxonomy it raises.
package sql

import (
	"strings"

	"github.com/relplan/sqltorel/sql/types"
)

// Field describes a single column of a Schema.
type Field struct {
	Name     string
	Type     types.DataType
	Nullable bool
}

// Schema is an ordered, immutable sequence of fields. Schemas are
// shared by value across many plan nodes; nothing in this module
// mutates a Schema after it is built, so copying the slice header is
// always safe.
type Schema []Field

// FieldByName looks up a field by exact name match, returning its
// index alongside it. ok is false when no field has that name.
func (s Schema) FieldByName(name string) (field Field, index int, ok bool) {
	for i, f := range s {
		if f.Name == name {
			return f, i, true
		}
	}
	return Field{}, -1, false
}

// Names returns the schema's field names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Equal reports whether two schemas are structurally identical: same
// length, and each field equal by name, type and nullability, in
// order. This is the equality the Union invariant (spec §3 invariant 4)
// is checked against.
func (s Schema) Equal(other Schema) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the schema the way diagnostics quote it: a
// comma-separated "name: Type" list.
func (s Schema) String() string {
	parts := make([]string, len(s))
	for i, f := range s {
		parts[i] = f.Name + ": " + f.Type.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
