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
)

// Operator names a relational binary operator. Unlike ast.BinaryOperator,
// every value here maps to a concrete spelling in rendered plans.
type Operator int

const (
	Eq Operator = iota
	NotEq
	Lt
	LtEq
	Gt
	GtEq
	Plus
	Minus
	Multiply
	Divide
	Modulus
	And
	Or
	Like
	NotLike
)

// operatorNames renders an operator the way it appears in a formatted
// plan: the enum variant's own name (Eq, NotEq, Divide, ...), not its
// SQL spelling.
var operatorNames = map[Operator]string{
	Eq:       "Eq",
	NotEq:    "NotEq",
	Lt:       "Lt",
	LtEq:     "LtEq",
	Gt:       "Gt",
	GtEq:     "GtEq",
	Plus:     "Plus",
	Minus:    "Minus",
	Multiply: "Multiply",
	Divide:   "Divide",
	Modulus:  "Modulus",
	And:      "And",
	Or:       "Or",
	Like:     "Like",
	NotLike:  "NotLike",
}

func (op Operator) String() string {
	if s, ok := operatorNames[op]; ok {
		return s
	}
	return "Unknown"
}

// BinaryExpr is `Left Op Right`. It is one of the three node types the
// AggregateAnalyzer recurses into looking for aggregate calls, so its
// two children must always be reachable as Left/Right and nothing else.
type BinaryExpr struct {
	Left  Expression
	Op    Operator
	Right Expression
}

func NewBinaryExpr(left Expression, op Operator, right Expression) *BinaryExpr {
	return &BinaryExpr{Left: left, Op: op, Right: right}
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Op.String(), b.Right.String())
}

func (b *BinaryExpr) Name(schema sql.Schema) (string, error) {
	left, err := b.Left.Name(schema)
	if err != nil {
		return "", err
	}
	right, err := b.Right.Name(schema)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", left, b.Op.String(), right), nil
}
