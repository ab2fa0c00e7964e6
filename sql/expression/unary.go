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

// Not is boolean negation `NOT Expr`. It is deliberately not one of the
// nodes the AggregateAnalyzer recurses through.
type Not struct {
	Expr Expression
}

func NewNot(expr Expression) *Not { return &Not{Expr: expr} }

func (n *Not) String() string { return fmt.Sprintf("NOT %s", n.Expr.String()) }

func (n *Not) Name(schema sql.Schema) (string, error) {
	inner, err := n.Expr.Name(schema)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("NOT %s", inner), nil
}

// IsNull is `Expr IS NULL`.
type IsNull struct {
	Expr Expression
}

func NewIsNull(expr Expression) *IsNull { return &IsNull{Expr: expr} }

func (n *IsNull) String() string { return fmt.Sprintf("%s IS NULL", n.Expr.String()) }

func (n *IsNull) Name(schema sql.Schema) (string, error) {
	inner, err := n.Expr.Name(schema)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s IS NULL", inner), nil
}

// IsNotNull is `Expr IS NOT NULL`.
type IsNotNull struct {
	Expr Expression
}

func NewIsNotNull(expr Expression) *IsNotNull { return &IsNotNull{Expr: expr} }

func (n *IsNotNull) String() string { return fmt.Sprintf("%s IS NOT NULL", n.Expr.String()) }

func (n *IsNotNull) Name(schema sql.Schema) (string, error) {
	inner, err := n.Expr.Name(schema)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s IS NOT NULL", inner), nil
}
