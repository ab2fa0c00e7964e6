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

// Sort wraps an expression with the ordering the planner's Sort node
// applies it with. It is an Expression like any other so a Sort plan
// node can carry a list of them alongside its input schema.
type Sort struct {
	Expr       Expression
	Asc        bool
	NullsFirst bool
}

func NewSort(expr Expression, asc, nullsFirst bool) *Sort {
	return &Sort{Expr: expr, Asc: asc, NullsFirst: nullsFirst}
}

func (s *Sort) String() string {
	dir := "ASC"
	if !s.Asc {
		dir = "DESC"
	}
	nulls := "NULLS LAST"
	if s.NullsFirst {
		nulls = "NULLS FIRST"
	}
	return fmt.Sprintf("%s %s %s", s.Expr.String(), dir, nulls)
}

func (s *Sort) Name(schema sql.Schema) (string, error) { return s.Expr.Name(schema) }
