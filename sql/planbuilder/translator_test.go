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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relplan/sqltorel/ast"
	"github.com/relplan/sqltorel/sql"
	"github.com/relplan/sqltorel/sql/testschema"
)

func boolPtr(b bool) *bool { return &b }

func idExpr(name string) ast.Expr { return &ast.Identifier{Name: name} }

func selectStmt(sel *ast.Select) *ast.QueryStatement {
	return &ast.QueryStatement{Query: &ast.Query{Body: sel}}
}

func translate(t *testing.T, stmt ast.Statement) string {
	t.Helper()
	tr := New(testschema.New())
	p, err := tr.StatementToPlan(stmt)
	require.NoError(t, err)
	return p.String()
}

func translateErr(t *testing.T, stmt ast.Statement) error {
	t.Helper()
	tr := New(testschema.New())
	_, err := tr.StatementToPlan(stmt)
	require.Error(t, err)
	return err
}

// Scenario 1: SELECT 1
func TestSelectLiteralNoRelation(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{&ast.UnnamedExpr{Expr: &ast.NumberLit{Text: "1"}}},
	})
	got := translate(t, stmt)
	assert.Equal(t, "Projection: Int64(1)\n  EmptyRelation", got)
}

// Scenario 2: SELECT id, first_name, last_name FROM person WHERE state = 'CO'
func TestSelectProjectionWithFilter(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{
			&ast.UnnamedExpr{Expr: idExpr("id")},
			&ast.UnnamedExpr{Expr: idExpr("first_name")},
			&ast.UnnamedExpr{Expr: idExpr("last_name")},
		},
		From: []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
		Selection: &ast.BinaryOp{
			Left:  idExpr("state"),
			Op:    ast.OpEq,
			Right: &ast.StringLit{Value: "CO"},
		},
	})
	got := translate(t, stmt)
	want := "Projection: #id, #first_name, #last_name\n" +
		"  Filter: #state Eq Utf8(\"CO\")\n" +
		"    TableScan: person projection=None"
	assert.Equal(t, want, got)
}

// Scenario 3: SELECT state, MIN(age), MAX(age) FROM person GROUP BY state
func TestSelectGroupByWithAggregates(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{
			&ast.UnnamedExpr{Expr: idExpr("state")},
			&ast.UnnamedExpr{Expr: &ast.Function{Name: "MIN", Args: []ast.Expr{idExpr("age")}}},
			&ast.UnnamedExpr{Expr: &ast.Function{Name: "MAX", Args: []ast.Expr{idExpr("age")}}},
		},
		From:    []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
		GroupBy: []ast.Expr{idExpr("state")},
	})
	got := translate(t, stmt)
	want := "Aggregate: groupBy=[[#state]], aggr=[[MIN(#age), MAX(#age)]]\n" +
		"  TableScan: person projection=None"
	assert.Equal(t, want, got)
}

// Scenario 4: SELECT COUNT(state), state FROM person GROUP BY state
func TestSelectCountThenGroupColumn(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{
			&ast.UnnamedExpr{Expr: &ast.Function{Name: "COUNT", Args: []ast.Expr{idExpr("state")}}},
			&ast.UnnamedExpr{Expr: idExpr("state")},
		},
		From:    []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
		GroupBy: []ast.Expr{idExpr("state")},
	})
	got := translate(t, stmt)
	want := "Projection: #COUNT(state), #state\n" +
		"  Aggregate: groupBy=[[#state]], aggr=[[COUNT(#state)]]\n" +
		"    TableScan: person projection=None"
	assert.Equal(t, want, got)
}

// Scenario 5: SELECT SUM(salary) / NULLIF(COUNT(state), 0), state FROM person GROUP BY state
func TestSelectDivideWithNullifRewrite(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{
			&ast.UnnamedExpr{Expr: &ast.BinaryOp{
				Left: &ast.Function{Name: "SUM", Args: []ast.Expr{idExpr("salary")}},
				Op:   ast.OpDivide,
				Right: &ast.Function{Name: "NULLIF", Args: []ast.Expr{
					&ast.Function{Name: "COUNT", Args: []ast.Expr{idExpr("state")}},
					&ast.NumberLit{Text: "0"},
				}},
			}},
			&ast.UnnamedExpr{Expr: idExpr("state")},
		},
		From:    []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
		GroupBy: []ast.Expr{idExpr("state")},
	})
	got := translate(t, stmt)
	want := "Projection: #SUM(salary) Divide if(#COUNT(state) NotEq Int64(0), #COUNT(state)), #state\n" +
		"  Aggregate: groupBy=[[#state]], aggr=[[SUM(#salary), COUNT(#state)]]\n" +
		"    TableScan: person projection=None"
	assert.Equal(t, want, got)
}

// Scenario 6: SELECT c1, MIN(c12) FROM aggregate_test_100 GROUP BY c1, c13
func TestSelectGroupByInconsistentWithProjectionFails(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{
			&ast.UnnamedExpr{Expr: idExpr("c1")},
			&ast.UnnamedExpr{Expr: &ast.Function{Name: "MIN", Args: []ast.Expr{idExpr("c12")}}},
		},
		From:    []ast.TableWithJoins{{Relation: &ast.Table{Name: "aggregate_test_100"}}},
		GroupBy: []ast.Expr{idExpr("c1"), idExpr("c13")},
	})
	err := translateErr(t, stmt)
	assert.True(t, sql.ErrPlan.Is(err))
	assert.Contains(t, err.Error(), "Projection references non-aggregate values")
}

// Scenario 7: CREATE EXTERNAL TABLE t STORED AS CSV LOCATION 'foo.csv'
func TestCreateExternalTableCSVRequiresColumns(t *testing.T) {
	stmt := &ast.CreateExternalTable{
		Name:     "t",
		FileType: ast.FileTypeCSV,
		Location: "foo.csv",
	}
	err := translateErr(t, stmt)
	assert.True(t, sql.ErrPlan.Is(err))
	assert.Contains(t, err.Error(), "Column definitions required for CSV files. None found")
}

// Scenario 8: SELECT id FROM person ORDER BY id DESC NULLS LAST
func TestSelectOrderByDescNullsLast(t *testing.T) {
	stmt := &ast.QueryStatement{
		Query: &ast.Query{
			Body: &ast.Select{
				Projection: []ast.SelectItem{&ast.UnnamedExpr{Expr: idExpr("id")}},
				From:       []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
			},
			OrderBy: []ast.OrderByExpr{
				{Expr: idExpr("id"), Asc: boolPtr(false), NullsFirst: boolPtr(false)},
			},
		},
	}
	got := translate(t, stmt)
	want := "Sort: #id DESC NULLS LAST\n" +
		"  Projection: #id\n" +
		"    TableScan: person projection=None"
	assert.Equal(t, want, got)
}

func TestSelectWildcardExpandsToColumns(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{&ast.WildcardItem{}},
		From:       []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
	})
	got := translate(t, stmt)
	want := "Projection: #id, #first_name, #last_name, #age, #state, #salary, #birth_date\n" +
		"  TableScan: person projection=None"
	assert.Equal(t, want, got)
}

func TestSelectUnknownTableFails(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{&ast.WildcardItem{}},
		From:       []ast.TableWithJoins{{Relation: &ast.Table{Name: "nope"}}},
	})
	err := translateErr(t, stmt)
	assert.True(t, sql.ErrPlan.Is(err))
}

func TestSelectUnknownIdentifierFails(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{&ast.UnnamedExpr{Expr: idExpr("nope")}},
		From:       []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
	})
	err := translateErr(t, stmt)
	assert.True(t, sql.ErrPlan.Is(err))
}

func TestSelectUnknownFunctionFails(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{&ast.UnnamedExpr{Expr: &ast.Function{Name: "nope", Args: []ast.Expr{idExpr("id")}}}},
		From:       []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
	})
	err := translateErr(t, stmt)
	assert.True(t, sql.ErrPlan.Is(err))
	assert.Contains(t, err.Error(), "Invalid function 'nope'")
}

func TestSelectGroupByOrdinal(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{
			&ast.UnnamedExpr{Expr: idExpr("state")},
			&ast.UnnamedExpr{Expr: &ast.Function{Name: "MIN", Args: []ast.Expr{idExpr("age")}}},
		},
		From:    []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
		GroupBy: []ast.Expr{&ast.NumberLit{Text: "1"}},
	})
	got := translate(t, stmt)
	want := "Aggregate: groupBy=[[#state]], aggr=[[MIN(#age)]]\n" +
		"  TableScan: person projection=None"
	assert.Equal(t, want, got)
}

func TestSelectGroupByOrdinalOutOfRangeFails(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{&ast.UnnamedExpr{Expr: idExpr("state")}},
		From:       []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
		GroupBy:    []ast.Expr{&ast.NumberLit{Text: "5"}},
	})
	err := translateErr(t, stmt)
	assert.True(t, sql.ErrGeneral.Is(err))
	assert.Contains(t, err.Error(), "Select column reference should be within 1..1 but found 5")
}

func TestSelectGroupByOrdinalOnAggregateFails(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{
			&ast.UnnamedExpr{Expr: &ast.Function{Name: "MIN", Args: []ast.Expr{idExpr("age")}}},
		},
		From:    []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
		GroupBy: []ast.Expr{&ast.NumberLit{Text: "1"}},
	})
	err := translateErr(t, stmt)
	assert.True(t, sql.ErrGeneral.Is(err))
	assert.Contains(t, err.Error(), "Can't group by aggregate function")
}

func TestUnionAllFlattensAndChecksSchema(t *testing.T) {
	left := &ast.Select{
		Projection: []ast.SelectItem{&ast.UnnamedExpr{Expr: idExpr("id")}},
		From:       []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
	}
	mid := &ast.Select{
		Projection: []ast.SelectItem{&ast.UnnamedExpr{Expr: idExpr("id")}},
		From:       []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
	}
	right := &ast.Select{
		Projection: []ast.SelectItem{&ast.UnnamedExpr{Expr: idExpr("id")}},
		From:       []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
	}
	stmt := selectStmtUnion(left, mid, right)
	tr := New(testschema.New())
	p, err := tr.StatementToPlan(stmt)
	require.NoError(t, err)
	want := "Union\n" +
		"  Projection: #id\n" +
		"    TableScan: person projection=None\n" +
		"  Projection: #id\n" +
		"    TableScan: person projection=None\n" +
		"  Projection: #id\n" +
		"    TableScan: person projection=None"
	assert.Equal(t, want, p.String())
}

func selectStmtUnion(left, mid, right *ast.Select) *ast.QueryStatement {
	inner := &ast.SetOperation{Op: ast.SetOperatorUnion, All: true, Left: left, Right: mid}
	outer := &ast.SetOperation{Op: ast.SetOperatorUnion, All: true, Left: inner, Right: right}
	return &ast.QueryStatement{Query: &ast.Query{Body: outer}}
}

func TestUnionWithoutAllFails(t *testing.T) {
	left := &ast.Select{
		Projection: []ast.SelectItem{&ast.UnnamedExpr{Expr: idExpr("id")}},
		From:       []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
	}
	right := &ast.Select{
		Projection: []ast.SelectItem{&ast.UnnamedExpr{Expr: idExpr("id")}},
		From:       []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
	}
	stmt := &ast.QueryStatement{Query: &ast.Query{Body: &ast.SetOperation{
		Op: ast.SetOperatorUnion, All: false, Left: left, Right: right,
	}}}
	err := translateErr(t, stmt)
	assert.True(t, sql.ErrNotImplemented.Is(err))
}

func TestExplainWrapsStatement(t *testing.T) {
	stmt := &ast.Explain{Statement: selectStmt(&ast.Select{
		Projection: []ast.SelectItem{&ast.UnnamedExpr{Expr: &ast.NumberLit{Text: "1"}}},
	})}
	got := translate(t, stmt)
	assert.Equal(t, "Explain", got)
}

func TestCreateExternalTableParquetRejectsColumns(t *testing.T) {
	stmt := &ast.CreateExternalTable{
		Name:     "t",
		FileType: ast.FileTypeParquet,
		Location: "foo.parquet",
		Columns:  []ast.ColumnDef{{Name: "a", Type: ast.DataType{Kind: ast.TypeInt}}},
	}
	err := translateErr(t, stmt)
	assert.True(t, sql.ErrPlan.Is(err))
	assert.Contains(t, err.Error(), "Column definitions can not be specified for PARQUET files.")
}

func TestCreateExternalTableParquetOk(t *testing.T) {
	stmt := &ast.CreateExternalTable{
		Name:     "t",
		FileType: ast.FileTypeParquet,
		Location: "foo.parquet",
	}
	got := translate(t, stmt)
	assert.Equal(t, "CreateExternalTable: t", got)
}

func TestCompoundIdentifierDefaultModeResolvesAgainstTopSchema(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{
			&ast.UnnamedExpr{Expr: &ast.CompoundIdentifier{Parts: []string{"p", "id"}}},
		},
		From: []ast.TableWithJoins{{Relation: &ast.Table{Name: "person", Alias: "p"}}},
	})
	tr := New(testschema.New())
	p, err := tr.StatementToPlan(stmt)
	require.NoError(t, err)
	assert.Equal(t, "Projection: #id\n  TableScan: person projection=None", p.String())
}

func TestCompoundIdentifierUnknownAliasFails(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{
			&ast.UnnamedExpr{Expr: &ast.CompoundIdentifier{Parts: []string{"q", "id"}}},
		},
		From: []ast.TableWithJoins{{Relation: &ast.Table{Name: "person", Alias: "p"}}},
	})
	err := translateErr(t, stmt)
	assert.True(t, sql.ErrPlan.Is(err))
	assert.Contains(t, err.Error(), "Alias not found")
}

func TestStrictModeResolvesAgainstAliasedSchema(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{
			&ast.UnnamedExpr{Expr: &ast.CompoundIdentifier{Parts: []string{"p", "id"}}},
		},
		From: []ast.TableWithJoins{{Relation: &ast.Table{Name: "person", Alias: "p"}}},
	})
	tr := New(testschema.New(), WithStrictMode(true))
	p, err := tr.StatementToPlan(stmt)
	require.NoError(t, err)
	assert.Equal(t, "Projection: #id\n  TableScan: person projection=None", p.String())
}

func TestHavingNotImplemented(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{&ast.UnnamedExpr{Expr: idExpr("state")}},
		From:       []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
		Having:     &ast.BinaryOp{Left: idExpr("state"), Op: ast.OpEq, Right: &ast.StringLit{Value: "CO"}},
	})
	err := translateErr(t, stmt)
	assert.True(t, sql.ErrNotImplemented.Is(err))
}

func TestMultipleFromTablesNotImplemented(t *testing.T) {
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{&ast.WildcardItem{}},
		From: []ast.TableWithJoins{
			{Relation: &ast.Table{Name: "person"}},
			{Relation: &ast.Table{Name: "aggregate_test_100"}},
		},
	})
	err := translateErr(t, stmt)
	assert.True(t, sql.ErrNotImplemented.Is(err))
}

func TestDerivedTableAlias(t *testing.T) {
	inner := &ast.Select{
		Projection: []ast.SelectItem{&ast.UnnamedExpr{Expr: idExpr("state")}},
		From:       []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
	}
	stmt := selectStmt(&ast.Select{
		Projection: []ast.SelectItem{&ast.UnnamedExpr{Expr: idExpr("state")}},
		From: []ast.TableWithJoins{{Relation: &ast.Derived{
			Subquery: &ast.Query{Body: inner},
			Alias:    "d",
		}}},
	})
	got := translate(t, stmt)
	want := "Projection: #state\n" +
		"  Projection: #state\n" +
		"    TableScan: person projection=None"
	assert.Equal(t, want, got)
}

func TestLimit(t *testing.T) {
	stmt := &ast.QueryStatement{Query: &ast.Query{
		Body: &ast.Select{
			Projection: []ast.SelectItem{&ast.UnnamedExpr{Expr: idExpr("id")}},
			From:       []ast.TableWithJoins{{Relation: &ast.Table{Name: "person"}}},
		},
		Limit: &ast.NumberLit{Text: "10"},
	}}
	got := translate(t, stmt)
	want := "Limit: 10\n" +
		"  Projection: #id\n" +
		"    TableScan: person projection=None"
	assert.Equal(t, want, got)
}
