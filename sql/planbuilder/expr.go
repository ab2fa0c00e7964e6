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
	"strconv"
	"strings"

	"github.com/relplan/sqltorel/ast"
	"github.com/relplan/sqltorel/sql"
	"github.com/relplan/sqltorel/sql/expression"
	"github.com/relplan/sqltorel/sql/types"
)

// AliasedSchema maps a FROM-clause alias to the schema of the relation
// it names, consulted when lowering compound identifiers.
type AliasedSchema map[string]sql.Schema

var binaryOperators = map[ast.BinaryOperator]expression.Operator{
	ast.OpEq:       expression.Eq,
	ast.OpNotEq:    expression.NotEq,
	ast.OpLt:       expression.Lt,
	ast.OpLtEq:     expression.LtEq,
	ast.OpGt:       expression.Gt,
	ast.OpGtEq:     expression.GtEq,
	ast.OpPlus:     expression.Plus,
	ast.OpMinus:    expression.Minus,
	ast.OpMultiply: expression.Multiply,
	ast.OpDivide:   expression.Divide,
	ast.OpModulus:  expression.Modulus,
	ast.OpAnd:      expression.And,
	ast.OpOr:       expression.Or,
	ast.OpLike:     expression.Like,
	ast.OpNotLike:  expression.NotLike,
}

// SqlToRex lowers a single SQL scalar expression into a relational
// expression, resolving identifiers against schema and aliasedSchema.
func (t *Translator) SqlToRex(e ast.Expr, schema sql.Schema, aliasedSchema AliasedSchema) (expression.Expression, error) {
	switch v := e.(type) {
	case *ast.NumberLit:
		return lowerNumberLit(v)

	case *ast.StringLit:
		return expression.NewLiteral(expression.NewUtf8(v.Value)), nil

	case *ast.Identifier:
		if strings.HasPrefix(v.Name, "@") {
			return expression.NewScalarVariable([]string{v.Name}), nil
		}
		field, _, ok := schema.FieldByName(v.Name)
		if !ok {
			return nil, sql.ErrPlan.New(fmt.Sprintf("Invalid identifier '%s' for schema %s", v.Name, schema.String()))
		}
		return expression.NewColumn(field.Name), nil

	case *ast.CompoundIdentifier:
		return t.lowerCompoundIdentifier(v, schema, aliasedSchema)

	case *ast.Wildcard:
		return expression.NewWildcard(), nil

	case *ast.Cast:
		inner, err := t.SqlToRex(v.Expr, schema, aliasedSchema)
		if err != nil {
			return nil, err
		}
		dt, err := types.ConvertDataType(v.Type)
		if err != nil {
			return nil, sql.ErrNotImplemented.New(err.Error())
		}
		return expression.NewCast(inner, dt), nil

	case *ast.IsNull:
		inner, err := t.SqlToRex(v.Expr, schema, aliasedSchema)
		if err != nil {
			return nil, err
		}
		return expression.NewIsNull(inner), nil

	case *ast.IsNotNull:
		inner, err := t.SqlToRex(v.Expr, schema, aliasedSchema)
		if err != nil {
			return nil, err
		}
		return expression.NewIsNotNull(inner), nil

	case *ast.UnaryOp:
		if v.Op != ast.UnaryNot {
			return nil, sql.ErrInternal.New("SQL binary operator cannot be interpreted as a unary operator")
		}
		inner, err := t.SqlToRex(v.Expr, schema, aliasedSchema)
		if err != nil {
			return nil, err
		}
		return expression.NewNot(inner), nil

	case *ast.BinaryOp:
		op, ok := binaryOperators[v.Op]
		if !ok {
			return nil, sql.ErrNotImplemented.New(fmt.Sprintf("Unsupported SQL binary operator %v", v.Op))
		}
		left, err := t.SqlToRex(v.Left, schema, aliasedSchema)
		if err != nil {
			return nil, err
		}
		right, err := t.SqlToRex(v.Right, schema, aliasedSchema)
		if err != nil {
			return nil, err
		}
		return expression.NewBinaryExpr(left, op, right), nil

	case *ast.Function:
		return t.lowerFunction(v, schema, aliasedSchema)

	case *ast.Nested:
		return t.SqlToRex(v.Expr, schema, aliasedSchema)

	default:
		return nil, sql.ErrNotImplemented.New(fmt.Sprintf("Unsupported ast node %T in sqltorel", e))
	}
}

func lowerNumberLit(v *ast.NumberLit) (expression.Expression, error) {
	if n, err := strconv.ParseInt(v.Text, 10, 64); err == nil {
		return expression.NewLiteral(expression.NewInt64(n)), nil
	}
	f, err := strconv.ParseFloat(v.Text, 64)
	if err != nil {
		return nil, sql.ErrGeneral.New(fmt.Sprintf("Can't parse %s as number", v.Text))
	}
	return expression.NewLiteral(expression.NewFloat64(f)), nil
}

func (t *Translator) lowerCompoundIdentifier(v *ast.CompoundIdentifier, schema sql.Schema, aliasedSchema AliasedSchema) (expression.Expression, error) {
	if len(v.Parts) == 0 {
		return nil, sql.ErrInternal.New("empty compound identifier")
	}
	if strings.HasPrefix(v.Parts[0], "@") {
		return expression.NewScalarVariable(v.Parts), nil
	}

	aliasPart := v.Parts[0]
	fieldPart := v.Parts[len(v.Parts)-1]

	aliasSchema, known := aliasedSchema[aliasPart]
	if !known {
		aliases := make([]string, 0, len(aliasedSchema))
		for a := range aliasedSchema {
			aliases = append(aliases, a)
		}
		sort.Strings(aliases)
		return nil, sql.ErrPlan.New(fmt.Sprintf("Invalid compound identifier '%v'. Alias not found among: %v", v.Parts, aliases))
	}

	lookupSchema := schema
	if t.strict {
		lookupSchema = aliasSchema
	}
	field, _, ok := lookupSchema.FieldByName(fieldPart)
	if !ok {
		return nil, sql.ErrPlan.New(fmt.Sprintf("Invalid identifier '%s' for schema %s", fieldPart, lookupSchema.String()))
	}
	return expression.NewColumn(field.Name), nil
}

// lowerFunction resolves a function call in this fixed order: built-in
// scalar, the NULLIF(a, b) special form, built-in aggregate, user scalar,
// user aggregate.
func (t *Translator) lowerFunction(v *ast.Function, schema sql.Schema, aliasedSchema AliasedSchema) (expression.Expression, error) {
	name := strings.ToLower(v.Name)

	if expression.BuiltinScalarFunctions[name] {
		args, err := t.lowerArgs(v.Args, schema, aliasedSchema)
		if err != nil {
			return nil, err
		}
		return expression.NewScalarFunction(name, args), nil
	}

	if name == "nullif" && expression.BuiltinScalarFunctions["if"] {
		if len(v.Args) != 2 {
			return nil, sql.ErrGeneral.New(fmt.Sprintf("nullif expects 2 arguments but found: %v", v.Args))
		}
		left, err := t.SqlToRex(v.Args[0], schema, aliasedSchema)
		if err != nil {
			return nil, err
		}
		right, err := t.SqlToRex(v.Args[1], schema, aliasedSchema)
		if err != nil {
			return nil, err
		}
		cond := expression.NewBinaryExpr(left, expression.NotEq, right)
		return expression.NewScalarFunction("if", []expression.Expression{cond, left}), nil
	}

	if expression.BuiltinAggregateFunctions[name] {
		args, err := t.lowerAggregateArgs(name, v.Args, schema, aliasedSchema)
		if err != nil {
			return nil, err
		}
		return expression.NewAggregateFunction(name, v.Distinct, args), nil
	}

	if meta, ok := t.provider.GetFunctionMeta(name); ok {
		return t.buildScalarUDF(meta, v.Args, schema, aliasedSchema)
	}
	if meta, ok := t.provider.GetFunctionMeta(strings.ToUpper(name)); ok {
		return t.buildScalarUDF(meta, v.Args, schema, aliasedSchema)
	}

	if meta, ok := t.provider.GetAggregateMeta(name); ok {
		return t.buildAggregateUDF(meta, v.Args, schema, aliasedSchema)
	}
	if meta, ok := t.provider.GetAggregateMeta(strings.ToUpper(name)); ok {
		return t.buildAggregateUDF(meta, v.Args, schema, aliasedSchema)
	}

	return nil, sql.ErrPlan.New(fmt.Sprintf("Invalid function '%s'", name))
}

func (t *Translator) lowerArgs(exprs []ast.Expr, schema sql.Schema, aliasedSchema AliasedSchema) ([]expression.Expression, error) {
	out := make([]expression.Expression, len(exprs))
	for i, a := range exprs {
		lowered, err := t.SqlToRex(a, schema, aliasedSchema)
		if err != nil {
			return nil, err
		}
		out[i] = lowered
	}
	return out, nil
}

// lowerAggregateArgs applies the COUNT special case: a number literal or
// wildcard argument becomes Literal(UInt8 1) instead of its usual
// lowering.
func (t *Translator) lowerAggregateArgs(fun string, exprs []ast.Expr, schema sql.Schema, aliasedSchema AliasedSchema) ([]expression.Expression, error) {
	if fun != "count" {
		return t.lowerArgs(exprs, schema, aliasedSchema)
	}
	out := make([]expression.Expression, len(exprs))
	for i, a := range exprs {
		switch a.(type) {
		case *ast.NumberLit, *ast.Wildcard:
			out[i] = expression.NewLiteral(expression.NewUInt8(1))
		default:
			lowered, err := t.SqlToRex(a, schema, aliasedSchema)
			if err != nil {
				return nil, err
			}
			out[i] = lowered
		}
	}
	return out, nil
}

func (t *Translator) buildScalarUDF(meta sql.ScalarFunctionMeta, exprs []ast.Expr, schema sql.Schema, aliasedSchema AliasedSchema) (expression.Expression, error) {
	args, err := t.lowerArgs(exprs, schema, aliasedSchema)
	if err != nil {
		return nil, err
	}
	return expression.NewScalarUDF(meta, args), nil
}

func (t *Translator) buildAggregateUDF(meta sql.AggregateFunctionMeta, exprs []ast.Expr, schema sql.Schema, aliasedSchema AliasedSchema) (expression.Expression, error) {
	args, err := t.lowerArgs(exprs, schema, aliasedSchema)
	if err != nil {
		return nil, err
	}
	return expression.NewAggregateUDF(meta, args), nil
}
