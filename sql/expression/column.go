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

package expression

import (
	"strings"

	"github.com/relplan/sqltorel/sql"
)

// Column is a reference to a field, resolved against an input schema at
// lowering time. The field is called FieldName rather than Name because
// Name is reserved for the Expression interface's computed-name method.
type Column struct {
	FieldName string
}

func NewColumn(name string) *Column { return &Column{FieldName: name} }

func (c *Column) String() string { return "#" + c.FieldName }

func (c *Column) Name(sql.Schema) (string, error) { return c.FieldName, nil }

// ScalarVariable is a reference to a session/system variable, always
// distinguished from a Column by a leading '@' on its first path
// segment.
type ScalarVariable struct {
	Path []string
}

func NewScalarVariable(path []string) *ScalarVariable { return &ScalarVariable{Path: path} }

func (v *ScalarVariable) String() string { return strings.Join(v.Path, ".") }

func (v *ScalarVariable) Name(sql.Schema) (string, error) { return strings.Join(v.Path, "."), nil }
