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

// Package ast holds the node types of a parsed SQL statement. Nothing in
// this package parses SQL text; it only defines the shapes a parser would
// produce and a translator consumes. Callers build these trees directly,
// the way a parser's own AST constructors would.
package ast

// Statement is a parsed top-level SQL statement.
type Statement interface {
	statementNode()
}

// QueryStatement wraps a SELECT/set-operation query as a statement.
type QueryStatement struct {
	Query *Query
}

func (*QueryStatement) statementNode() {}

// Explain wraps another statement for EXPLAIN [VERBOSE] ...
type Explain struct {
	Verbose   bool
	Statement Statement
}

func (*Explain) statementNode() {}

// CreateExternalTable is a CREATE EXTERNAL TABLE ... STORED AS <file_type>
// LOCATION '<path>' statement.
type CreateExternalTable struct {
	Name      string
	Columns   []ColumnDef
	FileType  FileType
	HasHeader bool
	Location  string
}

func (*CreateExternalTable) statementNode() {}

// OtherStatement stands in for any statement kind this module does not
// recognize (INSERT, UPDATE, DDL other than CREATE EXTERNAL TABLE, ...).
// Its only purpose is to trigger the "not implemented" diagnostic.
type OtherStatement struct {
	Kind string
}

func (*OtherStatement) statementNode() {}

// FileType names the external storage format of a CREATE EXTERNAL TABLE.
type FileType int

const (
	FileTypeCSV FileType = iota
	FileTypeParquet
	FileTypeNDJSON
)

func (f FileType) String() string {
	switch f {
	case FileTypeCSV:
		return "CSV"
	case FileTypeParquet:
		return "PARQUET"
	case FileTypeNDJSON:
		return "NDJSON"
	default:
		return "UNKNOWN"
	}
}

// ColumnDef is a single column definition in a CREATE EXTERNAL TABLE
// column list.
type ColumnDef struct {
	Name     string
	Type     DataType
	Nullable bool
}

// Query is a SELECT (or set-operation over selects), plus the trailing
// ORDER BY / LIMIT that apply to the whole query.
type Query struct {
	Body    SetExpr
	OrderBy []OrderByExpr
	Limit   Expr // nil if absent
}

// SetExpr is either a single SELECT or a set operation over two SetExprs.
type SetExpr interface {
	setExprNode()
}

// Select is a single SELECT ... FROM ... WHERE ... GROUP BY ... clause.
type Select struct {
	Projection []SelectItem
	From       []TableWithJoins
	Selection  Expr // WHERE predicate, nil if absent
	GroupBy    []Expr
	Having     Expr // nil if absent
}

func (*Select) setExprNode() {}

// SetOperator names a set operation between two queries.
type SetOperator int

const (
	SetOperatorUnion SetOperator = iota
)

// SetOperation is `left <op> [ALL] right`.
type SetOperation struct {
	Op    SetOperator
	All   bool
	Left  SetExpr
	Right SetExpr
}

func (*SetOperation) setExprNode() {}

// TableWithJoins is one FROM-clause item. This module does not support
// joins (see Non-goals), so Relation is always a bare table or derived
// table; the field name is kept for symmetry with the wire shape a real
// parser would hand back.
type TableWithJoins struct {
	Relation TableFactor
}

// TableFactor is a single FROM-clause relation.
type TableFactor interface {
	tableFactorNode()
}

// Table is a reference to a catalog table, optionally aliased.
type Table struct {
	Name  string
	Alias string // "" if none
}

func (*Table) tableFactorNode() {}

// Derived is a subquery in the FROM clause: `(SELECT ...) [AS alias]`.
type Derived struct {
	Subquery *Query
	Alias    string // "" if none
}

func (*Derived) tableFactorNode() {}

// OtherTableFactor stands in for table factors this module does not
// recognize (e.g. a JOIN tree, a table function).
type OtherTableFactor struct {
	Kind string
}

func (*OtherTableFactor) tableFactorNode() {}

// SelectItem is one entry in a SELECT projection list.
type SelectItem interface {
	selectItemNode()
}

// UnnamedExpr is a projection item with no explicit alias.
type UnnamedExpr struct {
	Expr Expr
}

func (*UnnamedExpr) selectItemNode() {}

// ExprWithAlias is `<expr> AS <alias>`.
type ExprWithAlias struct {
	Expr  Expr
	Alias string
}

func (*ExprWithAlias) selectItemNode() {}

// WildcardItem is a bare `*` projection item.
type WildcardItem struct{}

func (*WildcardItem) selectItemNode() {}

// QualifiedWildcard is `<qualifier>.*`; unsupported by this module but
// recognized so it can be rejected precisely rather than misinterpreted.
type QualifiedWildcard struct {
	Qualifier string
}

func (*QualifiedWildcard) selectItemNode() {}

// OrderByExpr is one ORDER BY item. Asc and NullsFirst are nil when the
// clause did not specify a direction / null ordering explicitly.
type OrderByExpr struct {
	Expr       Expr
	Asc        *bool
	NullsFirst *bool
}
