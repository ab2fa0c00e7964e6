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
	"strings"

	"github.com/relplan/sqltorel/sql"
	"github.com/relplan/sqltorel/sql/expression"
)

// Sort reorders Input's rows by Exprs, each already carrying its own
// direction and null ordering.
type Sort struct {
	Exprs []*expression.Sort
	Input Plan
}

func NewSort(exprs []*expression.Sort, input Plan) *Sort {
	return &Sort{Exprs: exprs, Input: input}
}

func (s *Sort) Schema() sql.Schema { return s.Input.Schema() }

func (s *Sort) Children() []Plan { return []Plan{s.Input} }

func (s *Sort) line() string {
	parts := make([]string, len(s.Exprs))
	for i, e := range s.Exprs {
		parts[i] = e.String()
	}
	return "Sort: " + strings.Join(parts, ", ")
}

func (s *Sort) String() string { return render(s, 0) }
