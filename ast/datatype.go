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

package ast

// DataTypeKind enumerates the SQL type syntax this module recognizes in
// CAST expressions and column definitions. It is distinct from the
// engine's physical type system (sql/types.DataType); DataTypeKind is
// what a parser hands back, DataType (in sql/types) is what the
// translator produces.
type DataTypeKind int

const (
	TypeBoolean DataTypeKind = iota
	TypeSmallInt
	TypeInt
	TypeBigInt
	TypeFloat
	TypeReal
	TypeDouble
	TypeDecimal
	TypeChar
	TypeVarchar
	TypeText
	TypeDate
	TypeTime
	TypeTimestamp
	TypeOther
)

// DataType is the SQL-syntax spelling of a type, as it appears in a
// CAST(... AS <DataType>) or a column definition's type clause.
type DataType struct {
	Kind DataTypeKind
	// Precision/Scale apply to DECIMAL(p, s); Length applies to
	// CHAR(n)/VARCHAR(n)/FLOAT(n). Zero means "not specified".
	Precision int
	Scale     int
	Length    int
	// Name carries the original spelling for TypeOther, so diagnostics
	// can name the unsupported type.
	Name string
}
