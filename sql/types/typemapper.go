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

package types

import (
	"fmt"

	"github.com/relplan/sqltorel/ast"
)

// MakeDataType maps a column definition's SQL type (CREATE EXTERNAL
// TABLE) to a physical DataType. It deliberately diverges from
// ConvertDataType on TIMESTAMP: see ConvertDataType's doc comment.
func MakeDataType(t ast.DataType) (DataType, error) {
	switch t.Kind {
	case ast.TypeBoolean:
		return Boolean, nil
	case ast.TypeSmallInt:
		return Int16, nil
	case ast.TypeInt:
		return Int32, nil
	case ast.TypeBigInt:
		return Int64, nil
	case ast.TypeFloat:
		return Float32, nil
	case ast.TypeReal:
		return Float64, nil
	case ast.TypeDouble:
		return Float64, nil
	case ast.TypeDecimal:
		return Float64, nil
	case ast.TypeChar, ast.TypeVarchar, ast.TypeText:
		return Utf8, nil
	case ast.TypeDate:
		return Date64Day, nil
	case ast.TypeTime:
		return Time64Millisecond, nil
	case ast.TypeTimestamp:
		return Date64Millisecond, nil
	default:
		return DataType{}, fmt.Errorf("the SQL data type %s is not implemented", typeName(t))
	}
}

// ConvertDataType maps a CAST(... AS <type>) target type to a physical
// DataType.
//
// It maps TIMESTAMP to Timestamp(Nanosecond, None), while MakeDataType
// maps the DDL spelling of TIMESTAMP to Date64(Millisecond). That split
// is preserved on purpose: the two call sites disagree in the system
// this was adapted from, and existing callers depend on each of them
// individually. Do not unify them.
func ConvertDataType(t ast.DataType) (DataType, error) {
	switch t.Kind {
	case ast.TypeBoolean:
		return Boolean, nil
	case ast.TypeSmallInt:
		return Int16, nil
	case ast.TypeInt:
		return Int32, nil
	case ast.TypeBigInt:
		return Int64, nil
	case ast.TypeFloat, ast.TypeReal:
		return Float64, nil
	case ast.TypeDouble:
		return Float64, nil
	case ast.TypeChar, ast.TypeVarchar:
		return Utf8, nil
	case ast.TypeTimestamp:
		return TimestampNanosecond, nil
	default:
		return DataType{}, fmt.Errorf("unsupported SQL type %s", typeName(t))
	}
}

func typeName(t ast.DataType) string {
	if t.Kind == ast.TypeOther && t.Name != "" {
		return t.Name
	}
	names := [...]string{
		"BOOLEAN", "SMALLINT", "INT", "BIGINT", "FLOAT", "REAL", "DOUBLE",
		"DECIMAL", "CHAR", "VARCHAR", "TEXT", "DATE", "TIME", "TIMESTAMP", "OTHER",
	}
	if int(t.Kind) < len(names) {
		return names[t.Kind]
	}
	return "UNKNOWN"
}
