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
	"fmt"
	"strings"

	"github.com/relplan/sqltorel/sql"
	"github.com/relplan/sqltorel/sql/expression"
)

// Aggregate groups Input by GroupExpr and evaluates AggrExpr per group.
// Its output schema has one field per group expression followed by one
// per aggregate expression, in that order.
type Aggregate struct {
	GroupExpr   []expression.Expression
	AggrExpr    []expression.Expression
	Input       Plan
	SchemaValue sql.Schema
}

func NewAggregate(groupExpr, aggrExpr []expression.Expression, input Plan) (*Aggregate, error) {
	groupFields, err := fieldsOf(groupExpr, input.Schema())
	if err != nil {
		return nil, err
	}
	aggrFields, err := fieldsOf(aggrExpr, input.Schema())
	if err != nil {
		return nil, err
	}
	schema := append(append(sql.Schema{}, groupFields...), aggrFields...)
	return &Aggregate{GroupExpr: groupExpr, AggrExpr: aggrExpr, Input: input, SchemaValue: schema}, nil
}

func (a *Aggregate) Schema() sql.Schema { return a.SchemaValue }

func (a *Aggregate) Children() []Plan { return []Plan{a.Input} }

func (a *Aggregate) line() string {
	return fmt.Sprintf("Aggregate: groupBy=[[%s]], aggr=[[%s]]",
		joinStrings(a.GroupExpr), joinStrings(a.AggrExpr))
}

func (a *Aggregate) String() string { return render(a, 0) }

func joinStrings(exprs []expression.Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
