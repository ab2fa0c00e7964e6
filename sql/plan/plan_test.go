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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relplan/sqltorel/sql"
	"github.com/relplan/sqltorel/sql/expression"
	"github.com/relplan/sqltorel/sql/types"
)

func personSchema() sql.Schema {
	return sql.Schema{
		{Name: "id", Type: types.Int64, Nullable: false},
		{Name: "state", Type: types.Utf8, Nullable: false},
	}
}

func TestBuilderProjectExpandsWildcard(t *testing.T) {
	b := Scan("person", personSchema(), "")
	b, err := b.Project([]expression.Expression{expression.NewWildcard()})
	require.NoError(t, err)
	p := b.Build()
	assert.Equal(t, "Projection: #id, #state\n  TableScan: person projection=None", p.String())
	assert.Equal(t, []string{"id", "state"}, p.Schema().Names())
}

func TestBuilderFilterKeepsInputSchema(t *testing.T) {
	b := Scan("person", personSchema(), "")
	predicate := expression.NewBinaryExpr(expression.NewColumn("state"), expression.Eq, expression.NewLiteral(expression.NewUtf8("CO")))
	b = b.Filter(predicate)
	p := b.Build()
	assert.Equal(t, personSchema(), p.Schema())
	assert.Equal(t, `Filter: #state Eq Utf8("CO")`+"\n  TableScan: person projection=None", p.String())
}

func TestBuilderAggregateSchemaOrdersGroupThenAggr(t *testing.T) {
	b := Scan("person", personSchema(), "")
	groupExpr := []expression.Expression{expression.NewColumn("state")}
	aggrExpr := []expression.Expression{expression.NewAggregateFunction("count", false, []expression.Expression{expression.NewColumn("id")})}
	b, err := b.Aggregate(groupExpr, aggrExpr)
	require.NoError(t, err)
	p := b.Build()
	assert.Equal(t, []string{"state", "COUNT(id)"}, p.Schema().Names())
}

func TestBuilderSortAndLimitWrapWithoutChangingSchema(t *testing.T) {
	b := Scan("person", personSchema(), "")
	sorts := []*expression.Sort{expression.NewSort(expression.NewColumn("id"), false, false)}
	b = b.Sort(sorts).Limit(5)
	p := b.Build()
	assert.Equal(t, "Limit: 5\n  Sort: #id DESC NULLS LAST\n    TableScan: person projection=None", p.String())
	assert.Equal(t, personSchema(), p.Schema())
}

func TestUnionSchemaIsFirstInputsSchema(t *testing.T) {
	left := Scan("person", personSchema(), "").Build()
	right := Scan("person", personSchema(), "").Build()
	u := NewUnion([]Plan{left, right}, "")
	assert.Equal(t, personSchema(), u.Schema())
	assert.Equal(t, "Union\n  TableScan: person projection=None\n  TableScan: person projection=None", u.String())
}

func TestExplainSchemaIsFixedAndChildrenEmpty(t *testing.T) {
	wrapped := Scan("person", personSchema(), "").Build()
	e := NewExplain(false, wrapped)
	assert.Equal(t, []string{"plan_type", "plan"}, e.Schema().Names())
	assert.Empty(t, e.Children())
	assert.Equal(t, "LogicalPlan", e.StringifiedPlans[0].PlanType)
	assert.Equal(t, wrapped.String(), e.StringifiedPlans[0].Plan)
}

func TestEmptyRelationHasNoColumnsAndNoChildren(t *testing.T) {
	e := Empty().Build()
	assert.Empty(t, e.Schema())
	assert.Empty(t, e.Children())
	assert.Equal(t, "EmptyRelation", e.String())
}
