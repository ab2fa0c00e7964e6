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
	"github.com/relplan/sqltorel/sql/types"
)

// inferType and inferNullable derive the output field of a projected or
// aggregated expression from its input schema. The source this was
// adapted from carries a real Arrow-backed type-inference pass; this
// translator has no physical expression evaluator of its own; these two
// functions are its closest equivalent, confined to the handful of
// expression shapes SPEC_FULL names as scenario output (see the type
// inference entry among DESIGN.md's implementation decisions for
// defaults chosen beyond those).
func inferType(e expression.Expression, schema sql.Schema) types.DataType {
	switch v := e.(type) {
	case *expression.Literal:
		return v.Value.DataType()
	case *expression.Column:
		if f, _, ok := schema.FieldByName(v.FieldName); ok {
			return f.Type
		}
		return types.Utf8
	case *expression.ScalarVariable:
		return types.Utf8
	case *expression.Alias:
		return inferType(v.Expr, schema)
	case *expression.Cast:
		return v.DataType
	case *expression.Not, *expression.IsNull, *expression.IsNotNull:
		return types.Boolean
	case *expression.BinaryExpr:
		switch v.Op {
		case expression.Eq, expression.NotEq, expression.Lt, expression.LtEq,
			expression.Gt, expression.GtEq, expression.And, expression.Or,
			expression.Like, expression.NotLike:
			return types.Boolean
		default:
			return inferType(v.Left, schema)
		}
	case *expression.ScalarFunction:
		switch v.Fun {
		case "concat", "lower", "upper", "trim", "ltrim", "rtrim", "replace", "substr":
			return types.Utf8
		default:
			return types.Float64
		}
	case *expression.AggregateFunction:
		switch v.Fun {
		case "count":
			return types.Int64
		default:
			if len(v.Args) == 1 {
				return inferType(v.Args[0], schema)
			}
			return types.Float64
		}
	case *expression.ScalarUDF:
		return v.Fun.ReturnType()
	case *expression.AggregateUDF:
		return v.Fun.ReturnType()
	default:
		return types.Utf8
	}
}

func inferNullable(e expression.Expression, schema sql.Schema) bool {
	switch v := e.(type) {
	case *expression.Literal:
		return false
	case *expression.Column:
		if f, _, ok := schema.FieldByName(v.FieldName); ok {
			return f.Nullable
		}
		return true
	case *expression.Alias:
		return inferNullable(v.Expr, schema)
	default:
		return true
	}
}

// fieldsOf builds the output Schema for a list of projected or
// aggregated expressions, named by their computed Name().
func fieldsOf(exprs []expression.Expression, schema sql.Schema) (sql.Schema, error) {
	out := make(sql.Schema, len(exprs))
	for i, e := range exprs {
		name, err := e.Name(schema)
		if err != nil {
			return nil, err
		}
		out[i] = sql.Field{
			Name:     name,
			Type:     inferType(e, schema),
			Nullable: inferNullable(e, schema),
		}
	}
	return out, nil
}
