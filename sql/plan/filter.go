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

package plan

import (
	"fmt"

	"github.com/relplan/sqltorel/sql"
	"github.com/relplan/sqltorel/sql/expression"
)

// Filter keeps rows from Input where Predicate evaluates true. Its
// output schema is its input's schema unchanged.
type Filter struct {
	Predicate expression.Expression
	Input     Plan
}

func NewFilter(predicate expression.Expression, input Plan) *Filter {
	return &Filter{Predicate: predicate, Input: input}
}

func (f *Filter) Schema() sql.Schema { return f.Input.Schema() }

func (f *Filter) Children() []Plan { return []Plan{f.Input} }

func (f *Filter) line() string { return fmt.Sprintf("Filter: %s", f.Predicate.String()) }

func (f *Filter) String() string { return render(f, 0) }
