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

package expression

import (
	"fmt"

	"github.com/relplan/sqltorel/sql"
	"github.com/relplan/sqltorel/sql/types"
)

// ScalarKind tags the variant held by a ScalarValue.
type ScalarKind int

const (
	Int64Kind ScalarKind = iota
	Float64Kind
	Utf8Kind
	UInt8Kind
	BooleanKind
)

// ScalarValue is a literal value carried by a Literal expression. Only
// one of the typed fields is meaningful, selected by Kind.
type ScalarValue struct {
	Kind    ScalarKind
	Int64   int64
	Float64 float64
	Utf8    string
	UInt8   uint8
	Bool    bool
}

func NewInt64(v int64) ScalarValue     { return ScalarValue{Kind: Int64Kind, Int64: v} }
func NewFloat64(v float64) ScalarValue { return ScalarValue{Kind: Float64Kind, Float64: v} }
func NewUtf8(v string) ScalarValue     { return ScalarValue{Kind: Utf8Kind, Utf8: v} }
func NewUInt8(v uint8) ScalarValue     { return ScalarValue{Kind: UInt8Kind, UInt8: v} }
func NewBoolean(v bool) ScalarValue    { return ScalarValue{Kind: BooleanKind, Bool: v} }

// DataType returns the physical type of the scalar's own variant.
func (v ScalarValue) DataType() types.DataType {
	switch v.Kind {
	case Int64Kind:
		return types.Int64
	case Float64Kind:
		return types.Float64
	case Utf8Kind:
		return types.Utf8
	case UInt8Kind:
		return types.UInt8
	case BooleanKind:
		return types.Boolean
	default:
		return types.Utf8
	}
}

func (v ScalarValue) String() string {
	switch v.Kind {
	case Int64Kind:
		return fmt.Sprintf("Int64(%d)", v.Int64)
	case Float64Kind:
		return fmt.Sprintf("Float64(%v)", v.Float64)
	case Utf8Kind:
		return fmt.Sprintf("Utf8(%q)", v.Utf8)
	case UInt8Kind:
		return fmt.Sprintf("UInt8(%d)", v.UInt8)
	case BooleanKind:
		return fmt.Sprintf("Boolean(%t)", v.Bool)
	default:
		return "Unknown"
	}
}

// Literal is a constant scalar value.
type Literal struct {
	Value ScalarValue
}

func NewLiteral(v ScalarValue) *Literal { return &Literal{Value: v} }

func (l *Literal) String() string { return l.Value.String() }

func (l *Literal) Name(sql.Schema) (string, error) { return l.Value.String(), nil }
