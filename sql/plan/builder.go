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
	"github.com/relplan/sqltorel/sql"
	"github.com/relplan/sqltorel/sql/expression"
)

// Builder is the fluent plan constructor a SelectPipeline drives. Each
// step is pure: it only ever fails on a plan-validity check (a schema
// that can't be derived), never on I/O.
type Builder struct {
	plan Plan
}

// Empty starts a builder over a no-input relation.
func Empty() *Builder { return &Builder{plan: NewEmptyRelation()} }

// Scan starts a builder over a named table.
func Scan(name string, schema sql.Schema, alias string) *Builder {
	return &Builder{plan: NewTableScan(name, schema, alias)}
}

// From starts a builder over an already-built plan, used when a
// SelectPipeline recurses into a derived table.
func From(p Plan) *Builder { return &Builder{plan: p} }

func (b *Builder) Schema() sql.Schema { return b.plan.Schema() }

func (b *Builder) Filter(predicate expression.Expression) *Builder {
	return &Builder{plan: NewFilter(predicate, b.plan)}
}

// Project wraps the current plan in a Projection over exprs. Any
// top-level Wildcard is expanded into one Column per field of the
// current schema first, so "SELECT *" renders as the concrete column
// list rather than a literal "*".
func (b *Builder) Project(exprs []expression.Expression) (*Builder, error) {
	p, err := NewProjection(expandWildcards(exprs, b.plan.Schema()), b.plan)
	if err != nil {
		return nil, err
	}
	return &Builder{plan: p}, nil
}

func expandWildcards(exprs []expression.Expression, schema sql.Schema) []expression.Expression {
	out := make([]expression.Expression, 0, len(exprs))
	for _, e := range exprs {
		if _, ok := e.(*expression.Wildcard); ok {
			for _, f := range schema {
				out = append(out, expression.NewColumn(f.Name))
			}
			continue
		}
		out = append(out, e)
	}
	return out
}

func (b *Builder) Aggregate(groupExpr, aggrExpr []expression.Expression) (*Builder, error) {
	a, err := NewAggregate(groupExpr, aggrExpr, b.plan)
	if err != nil {
		return nil, err
	}
	return &Builder{plan: a}, nil
}

func (b *Builder) Sort(exprs []*expression.Sort) *Builder {
	return &Builder{plan: NewSort(exprs, b.plan)}
}

func (b *Builder) Limit(count uint64) *Builder {
	return &Builder{plan: NewLimit(count, b.plan)}
}

// Build returns the plan assembled so far.
func (b *Builder) Build() Plan { return b.plan }
