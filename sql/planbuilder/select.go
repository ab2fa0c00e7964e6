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

package planbuilder

import (
	"fmt"
	"sort"

	"github.com/relplan/sqltorel/ast"
	"github.com/relplan/sqltorel/sql"
	"github.com/relplan/sqltorel/sql/expression"
	"github.com/relplan/sqltorel/sql/plan"
)

// fromJoinToPlan lowers a SELECT's FROM clause (spec step 1). Multiple
// tables (joins) are rejected: this translator has no join support.
func (t *Translator) fromJoinToPlan(from []ast.TableWithJoins) (plan.Plan, AliasedSchema, error) {
	if len(from) == 0 {
		return plan.Empty().Build(), AliasedSchema{}, nil
	}
	if len(from) != 1 {
		return nil, nil, sql.ErrNotImplemented.New("FROM with multiple tables is still not implemented")
	}

	switch rel := from[0].Relation.(type) {
	case *ast.Table:
		schema, ok := t.provider.GetTableMeta(rel.Name)
		if !ok {
			return nil, nil, sql.ErrPlan.New(fmt.Sprintf("no schema found for table %s", rel.Name))
		}
		p := plan.Scan(rel.Name, schema, rel.Alias).Build()
		aliased := AliasedSchema{}
		if rel.Alias != "" {
			aliased[rel.Alias] = schema
		}
		return p, aliased, nil

	case *ast.Derived:
		p, err := t.QueryToPlanWithAlias(rel.Subquery, rel.Alias)
		if err != nil {
			return nil, nil, err
		}
		aliased := AliasedSchema{}
		if rel.Alias != "" {
			aliased[rel.Alias] = p.Schema()
		}
		return p, aliased, nil

	default:
		return nil, nil, sql.ErrNotImplemented.New("Subqueries are still not supported")
	}
}

// selectToPlan lowers a single SELECT clause (spec §4.5, steps 1-6).
// ORDER BY and LIMIT (steps 7-8) apply at the Query level, after this
// returns, the same way they apply after a UNION's result.
func (t *Translator) selectToPlan(sel *ast.Select) (plan.Plan, error) {
	if sel.Having != nil {
		return nil, sql.ErrNotImplemented.New("HAVING is not implemented yet")
	}

	input, aliasedSchema, err := t.fromJoinToPlan(sel.From)
	if err != nil {
		return nil, err
	}

	if sel.Selection != nil {
		predicate, err := t.SqlToRex(sel.Selection, input.Schema(), aliasedSchema)
		if err != nil {
			return nil, err
		}
		input = plan.From(input).Filter(predicate).Build()
	}

	projectionExpr, err := t.lowerProjection(sel.Projection, input.Schema(), aliasedSchema)
	if err != nil {
		return nil, err
	}

	aggrExpr := distinctAggregateExprs(projectionExpr, input.Schema())

	if len(sel.GroupBy) > 0 || len(aggrExpr) > 0 {
		return t.buildAggregate(input, projectionExpr, sel.GroupBy, aggrExpr, aliasedSchema)
	}

	b, err := plan.From(input).Project(projectionExpr)
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func (t *Translator) lowerProjection(items []ast.SelectItem, schema sql.Schema, aliasedSchema AliasedSchema) ([]expression.Expression, error) {
	out := make([]expression.Expression, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case *ast.UnnamedExpr:
			e, err := t.SqlToRex(v.Expr, schema, aliasedSchema)
			if err != nil {
				return nil, err
			}
			out[i] = e
		case *ast.ExprWithAlias:
			e, err := t.SqlToRex(v.Expr, schema, aliasedSchema)
			if err != nil {
				return nil, err
			}
			out[i] = expression.NewAlias(e, v.Alias)
		case *ast.WildcardItem:
			out[i] = expression.NewWildcard()
		case *ast.QualifiedWildcard:
			return nil, sql.ErrNotImplemented.New("Qualified wildcards are not supported")
		default:
			return nil, sql.ErrNotImplemented.New(fmt.Sprintf("Unsupported select item %T", item))
		}
	}
	return out, nil
}

// distinctAggregateExprs collects every aggregate subexpression out of
// projectionExpr and deduplicates by computed name, first occurrence
// wins, preserving encounter order.
func distinctAggregateExprs(projectionExpr []expression.Expression, schema sql.Schema) []expression.Expression {
	var out []expression.Expression
	seen := map[string]bool{}
	for _, e := range projectionExpr {
		if !IsAggregateExpr(e) {
			continue
		}
		for _, agg := range CollectAggregateExpr(e) {
			name, err := agg.Name(schema)
			if err != nil || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, agg)
		}
	}
	return out
}

// buildAggregate implements the aggregate branch (spec §4.5.1).
func (t *Translator) buildAggregate(input plan.Plan, projectionExpr []expression.Expression, groupBy []ast.Expr, aggrExpr []expression.Expression, aliasedSchema AliasedSchema) (plan.Plan, error) {
	inputSchema := input.Schema()

	groupExpr := make([]expression.Expression, len(groupBy))
	for i, g := range groupBy {
		e, err := t.groupByExprAt(i, g, projectionExpr, inputSchema, aliasedSchema)
		if err != nil {
			return nil, err
		}
		groupExpr[i] = e
	}

	if err := checkProjectionGroupByConsistency(groupExpr, projectionExpr, inputSchema); err != nil {
		return nil, err
	}

	b, err := plan.From(input).Aggregate(groupExpr, aggrExpr)
	if err != nil {
		return nil, err
	}
	aggPlan := b.Build()

	outputNames := map[string]bool{}
	for _, f := range aggPlan.Schema() {
		outputNames[f.Name] = true
	}

	expectedColumns := make([]expression.Expression, len(projectionExpr))
	for i, e := range projectionExpr {
		rewritten, err := ReplaceAggregateExprInProjection(e, inputSchema, outputNames)
		if err != nil {
			return nil, err
		}
		expectedColumns[i] = rewritten
	}

	if sameNames(expectedColumns, aggPlan.Schema(), inputSchema) {
		return aggPlan, nil
	}

	pb, err := plan.From(aggPlan).Project(expectedColumns)
	if err != nil {
		return nil, err
	}
	return pb.Build(), nil
}

func sameNames(exprs []expression.Expression, schema sql.Schema, nameSchema sql.Schema) bool {
	if len(exprs) != len(schema) {
		return false
	}
	for i, e := range exprs {
		name, err := e.Name(nameSchema)
		if err != nil || name != schema[i].Name {
			return false
		}
	}
	return true
}

func (t *Translator) groupByExprAt(idx int, g ast.Expr, projectionExpr []expression.Expression, inputSchema sql.Schema, aliasedSchema AliasedSchema) (expression.Expression, error) {
	if lit, ok := g.(*ast.NumberLit); ok {
		n, err := parseOrdinal(lit.Text)
		if err != nil {
			return nil, sql.ErrGeneral.New(fmt.Sprintf("Can't parse %s as number", lit.Text))
		}
		if n < 1 || n > len(projectionExpr) {
			return nil, sql.ErrGeneral.New(fmt.Sprintf("Select column reference should be within 1..%d but found %d", len(projectionExpr), n))
		}
		ref := projectionExpr[n-1]
		if IsAggregateExpr(ref) {
			return nil, sql.ErrGeneral.New(fmt.Sprintf("Can't group by aggregate function: %s", ref.String()))
		}
		return ref, nil
	}
	return t.SqlToRex(g, inputSchema, aliasedSchema)
}

func parseOrdinal(text string) (int, error) {
	n := 0
	if text == "" {
		return 0, fmt.Errorf("empty ordinal")
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a non-negative integer: %s", text)
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

func checkProjectionGroupByConsistency(groupExpr, projectionExpr []expression.Expression, schema sql.Schema) error {
	groupNames := make([]string, len(groupExpr))
	for i, e := range groupExpr {
		name, err := e.Name(schema)
		if err != nil {
			return err
		}
		groupNames[i] = name
	}

	var nonAggrNames []string
	for _, e := range projectionExpr {
		if IsAggregateExpr(e) {
			continue
		}
		name, err := e.Name(schema)
		if err != nil {
			return err
		}
		nonAggrNames = append(nonAggrNames, name)
	}

	sort.Strings(groupNames)
	sort.Strings(nonAggrNames)

	if len(groupNames) != len(nonAggrNames) {
		return sql.ErrPlan.New("Projection references non-aggregate values")
	}
	for i := range groupNames {
		if groupNames[i] != nonAggrNames[i] {
			return sql.ErrPlan.New("Projection references non-aggregate values")
		}
	}
	return nil
}

// orderBy wraps plan in a Sort node for a non-empty ORDER BY clause
// (spec §4.5 step 7). An empty clause returns plan unchanged.
func (t *Translator) orderBy(p plan.Plan, orderBy []ast.OrderByExpr) (plan.Plan, error) {
	if len(orderBy) == 0 {
		return p, nil
	}
	sorts := make([]*expression.Sort, len(orderBy))
	for i, o := range orderBy {
		e, err := t.SqlToRex(o.Expr, p.Schema(), AliasedSchema{})
		if err != nil {
			return nil, err
		}
		asc := true
		if o.Asc != nil {
			asc = *o.Asc
		}
		nullsFirst := true
		if o.NullsFirst != nil {
			nullsFirst = *o.NullsFirst
		}
		sorts[i] = expression.NewSort(e, asc, nullsFirst)
	}
	return plan.From(p).Sort(sorts).Build(), nil
}

// limit wraps plan in a Limit node for a present LIMIT clause (spec
// §4.5 step 8). An absent clause returns plan unchanged.
func (t *Translator) limit(p plan.Plan, limitExpr ast.Expr) (plan.Plan, error) {
	if limitExpr == nil {
		return p, nil
	}
	e, err := t.SqlToRex(limitExpr, p.Schema(), AliasedSchema{})
	if err != nil {
		return nil, err
	}
	lit, ok := e.(*expression.Literal)
	if !ok || lit.Value.Kind != expression.Int64Kind {
		return nil, sql.ErrPlan.New("Unexpected expression for LIMIT clause")
	}
	return plan.From(p).Limit(uint64(lit.Value.Int64)).Build(), nil
}
