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
)

// Limit caps Input to at most Count rows.
type Limit struct {
	Count uint64
	Input Plan
}

func NewLimit(count uint64, input Plan) *Limit { return &Limit{Count: count, Input: input} }

func (l *Limit) Schema() sql.Schema { return l.Input.Schema() }

func (l *Limit) Children() []Plan { return []Plan{l.Input} }

func (l *Limit) line() string { return fmt.Sprintf("Limit: %d", l.Count) }

func (l *Limit) String() string { return render(l, 0) }
