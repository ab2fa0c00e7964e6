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

	"github.com/sirupsen/logrus"

	"github.com/relplan/sqltorel/ast"
	"github.com/relplan/sqltorel/sql"
	"github.com/relplan/sqltorel/sql/plan"
	"github.com/relplan/sqltorel/sql/types"
)

// StatementToPlan dispatches a top-level statement to the lowering path
// for its kind (spec §4.4).
func (t *Translator) StatementToPlan(stmt ast.Statement) (plan.Plan, error) {
	p, err := t.statementToPlan(stmt)
	if t.log != nil {
		fields := logrus.Fields{"statement_kind": fmt.Sprintf("%T", stmt)}
		if err != nil {
			fields["outcome"] = "error"
			fields["error_kind"] = errorKind(err)
		} else {
			fields["outcome"] = "ok"
		}
		t.log.WithFields(fields).Debug("statement_to_plan")
	}
	return p, err
}

func errorKind(err error) string {
	switch {
	case sql.ErrNotImplemented.Is(err):
		return "NotImplemented"
	case sql.ErrPlan.Is(err):
		return "Plan"
	case sql.ErrGeneral.Is(err):
		return "General"
	case sql.ErrInternal.Is(err):
		return "Internal"
	default:
		return "Unknown"
	}
}

func (t *Translator) statementToPlan(stmt ast.Statement) (plan.Plan, error) {
	switch s := stmt.(type) {
	case *ast.QueryStatement:
		return t.QueryToPlanWithAlias(s.Query, "")
	case *ast.CreateExternalTable:
		return t.externalTableToPlan(s)
	case *ast.Explain:
		return t.explainStatementToPlan(s)
	default:
		return nil, sql.ErrNotImplemented.New("Only SELECT statements are implemented")
	}
}

// QueryToPlanWithAlias lowers a query body and then applies ORDER BY and
// LIMIT over its result (spec §4.5 steps 7-8), the same path a UNION's
// result goes through.
func (t *Translator) QueryToPlanWithAlias(query *ast.Query, alias string) (plan.Plan, error) {
	p, err := t.setExprToPlan(query.Body, alias)
	if err != nil {
		return nil, err
	}
	p, err = t.orderBy(p, query.OrderBy)
	if err != nil {
		return nil, err
	}
	return t.limit(p, query.Limit)
}

func (t *Translator) setExprToPlan(body ast.SetExpr, alias string) (plan.Plan, error) {
	switch s := body.(type) {
	case *ast.Select:
		return t.selectToPlan(s)
	case *ast.SetOperation:
		return t.setOperationToPlan(s, alias)
	default:
		return nil, sql.ErrNotImplemented.New(fmt.Sprintf("Query %T not implemented yet", body))
	}
}

// setOperationToPlan implements UNION ALL (spec §4.6). Any other set
// operation, or UNION without ALL, is rejected.
func (t *Translator) setOperationToPlan(op *ast.SetOperation, alias string) (plan.Plan, error) {
	if op.Op != ast.SetOperatorUnion || !op.All {
		return nil, sql.ErrNotImplemented.New("Only UNION ALL is supported")
	}

	left, err := t.setExprToPlan(op.Left, "")
	if err != nil {
		return nil, err
	}
	right, err := t.setExprToPlan(op.Right, "")
	if err != nil {
		return nil, err
	}

	var inputs []plan.Plan
	for _, p := range []plan.Plan{left, right} {
		if u, ok := p.(*plan.Union); ok {
			inputs = append(inputs, u.Inputs...)
		} else {
			inputs = append(inputs, p)
		}
	}

	if len(inputs) == 0 {
		return nil, sql.ErrGeneral.New("Empty UNION")
	}
	first := inputs[0].Schema()
	for _, in := range inputs[1:] {
		if !in.Schema().Equal(first) {
			return nil, sql.ErrGeneral.New("UNION ALL schema expected to be the same across selects")
		}
	}

	return plan.NewUnion(inputs, alias), nil
}

// externalTableToPlan lowers CREATE EXTERNAL TABLE (spec §4.4).
func (t *Translator) externalTableToPlan(s *ast.CreateExternalTable) (plan.Plan, error) {
	switch s.FileType {
	case ast.FileTypeCSV:
		if len(s.Columns) == 0 {
			return nil, sql.ErrPlan.New("Column definitions required for CSV files. None found")
		}
	case ast.FileTypeParquet:
		if len(s.Columns) != 0 {
			return nil, sql.ErrPlan.New("Column definitions can not be specified for PARQUET files.")
		}
	case ast.FileTypeNDJSON:
		// no check
	}

	schema, err := buildSchema(s.Columns)
	if err != nil {
		return nil, err
	}
	return plan.NewCreateExternalTable(s.Name, schema, s.Location, s.FileType, s.HasHeader), nil
}

func buildSchema(columns []ast.ColumnDef) (sql.Schema, error) {
	fields := make(sql.Schema, len(columns))
	for i, c := range columns {
		dt, err := types.MakeDataType(c.Type)
		if err != nil {
			return nil, sql.ErrNotImplemented.New(err.Error())
		}
		fields[i] = sql.Field{Name: c.Name, Type: dt, Nullable: c.Nullable}
	}
	return fields, nil
}

// explainStatementToPlan lowers EXPLAIN [VERBOSE] stmt (spec §4.4).
func (t *Translator) explainStatementToPlan(s *ast.Explain) (plan.Plan, error) {
	inner, err := t.statementToPlan(s.Statement)
	if err != nil {
		return nil, err
	}
	return plan.NewExplain(s.Verbose, inner), nil
}
