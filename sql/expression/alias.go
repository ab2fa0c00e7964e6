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

// Alias gives an inner expression an explicit output name. The alias
// wins for both String and Name: once aliased, an expression is known
// by that name everywhere downstream (schema fields, GROUP BY matching,
// re-projection).
type Alias struct {
	Expr  Expression
	Alias string
}

func NewAlias(expr Expression, alias string) *Alias { return &Alias{Expr: expr, Alias: alias} }

func (a *Alias) String() string { return fmt.Sprintf("%s AS %s", a.Expr.String(), a.Alias) }

func (a *Alias) Name(sql.Schema) (string, error) { return a.Alias, nil }
