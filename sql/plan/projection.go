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

package plan

import (
	"strings"

	"github.com/relplan/sqltorel/sql"
	"github.com/relplan/sqltorel/sql/expression"
)

// Projection evaluates Expressions row-by-row over Input.
type Projection struct {
	Expressions []expression.Expression
	Input       Plan
	SchemaValue sql.Schema
}

// NewProjection builds a Projection, deriving its output schema from
// Input's schema and the computed name/type of each expression.
func NewProjection(exprs []expression.Expression, input Plan) (*Projection, error) {
	schema, err := fieldsOf(exprs, input.Schema())
	if err != nil {
		return nil, err
	}
	return &Projection{Expressions: exprs, Input: input, SchemaValue: schema}, nil
}

func (p *Projection) Schema() sql.Schema { return p.SchemaValue }

func (p *Projection) Children() []Plan { return []Plan{p.Input} }

func (p *Projection) line() string {
	parts := make([]string, len(p.Expressions))
	for i, e := range p.Expressions {
		parts[i] = e.String()
	}
	return "Projection: " + strings.Join(parts, ", ")
}

func (p *Projection) String() string { return render(p, 0) }
