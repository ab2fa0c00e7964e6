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
	"github.com/relplan/sqltorel/sql"
	"github.com/relplan/sqltorel/sql/expression"
)

// IsAggregateExpr reports whether e contains an AggregateFunction or
// AggregateUDF anywhere inside the recursable shapes Alias, BinaryExpr
// and ScalarFunction. It deliberately does not recurse into Cast,
// IsNull, IsNotNull, Not or ScalarUDF arguments: an aggregate hidden
// under one of those forms is treated as non-aggregate here, matching
// the source this was adapted from rather than the more conservative
// "recurse everywhere" behavior a new implementation might pick.
func IsAggregateExpr(e expression.Expression) bool {
	switch v := e.(type) {
	case *expression.AggregateFunction, *expression.AggregateUDF:
		return true
	case *expression.Alias:
		return IsAggregateExpr(v.Expr)
	case *expression.BinaryExpr:
		return IsAggregateExpr(v.Left) || IsAggregateExpr(v.Right)
	case *expression.ScalarFunction:
		for _, a := range v.Args {
			if IsAggregateExpr(a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// CollectAggregateExpr accumulates every AggregateFunction/AggregateUDF
// subexpression of e, in prefix order, through the same recursion shape
// as IsAggregateExpr.
func CollectAggregateExpr(e expression.Expression) []expression.Expression {
	var out []expression.Expression
	collectAggregateExprInto(e, &out)
	return out
}

func collectAggregateExprInto(e expression.Expression, out *[]expression.Expression) {
	switch v := e.(type) {
	case *expression.AggregateFunction, *expression.AggregateUDF:
		*out = append(*out, e)
	case *expression.Alias:
		collectAggregateExprInto(v.Expr, out)
	case *expression.BinaryExpr:
		collectAggregateExprInto(v.Left, out)
		collectAggregateExprInto(v.Right, out)
	case *expression.ScalarFunction:
		for _, a := range v.Args {
			collectAggregateExprInto(a, out)
		}
	}
}

// ReplaceAggregateExprInProjection rewrites e so that any subexpression
// (e included) whose computed name is in replacementNames is replaced by
// Column(name). It recurses into Alias, BinaryExpr and ScalarFunction;
// every other shape that doesn't match by name is returned unchanged.
//
// replacementNames is the full set of an Aggregate node's own output
// field names (group fields and aggregate fields together), not just
// the aggregate ones: a bare GROUP BY column in the projection matches
// this set too, which is what lets it pass through untouched.
func ReplaceAggregateExprInProjection(e expression.Expression, inputSchema sql.Schema, replacementNames map[string]bool) (expression.Expression, error) {
	name, err := e.Name(inputSchema)
	if err != nil {
		return nil, err
	}
	if replacementNames[name] {
		return expression.NewColumn(name), nil
	}

	switch v := e.(type) {
	case *expression.Alias:
		inner, err := ReplaceAggregateExprInProjection(v.Expr, inputSchema, replacementNames)
		if err != nil {
			return nil, err
		}
		return expression.NewAlias(inner, v.Alias), nil
	case *expression.BinaryExpr:
		left, err := ReplaceAggregateExprInProjection(v.Left, inputSchema, replacementNames)
		if err != nil {
			return nil, err
		}
		right, err := ReplaceAggregateExprInProjection(v.Right, inputSchema, replacementNames)
		if err != nil {
			return nil, err
		}
		return expression.NewBinaryExpr(left, v.Op, right), nil
	case *expression.ScalarFunction:
		args := make([]expression.Expression, len(v.Args))
		for i, a := range v.Args {
			r, err := ReplaceAggregateExprInProjection(a, inputSchema, replacementNames)
			if err != nil {
				return nil, err
			}
			args[i] = r
		}
		return expression.NewScalarFunction(v.Fun, args), nil
	default:
		return e, nil
	}
}
