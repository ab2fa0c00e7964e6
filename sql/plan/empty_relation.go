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

import "github.com/relplan/sqltorel/sql"

// EmptyRelation is the input for a query with no FROM clause: it
// produces exactly one row and no columns.
type EmptyRelation struct{}

func NewEmptyRelation() *EmptyRelation { return &EmptyRelation{} }

func (*EmptyRelation) Schema() sql.Schema { return sql.Schema{} }

func (*EmptyRelation) Children() []Plan { return nil }

func (e *EmptyRelation) line() string { return "EmptyRelation" }

func (e *EmptyRelation) String() string { return render(e, 0) }
