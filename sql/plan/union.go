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

// Union concatenates rows from Inputs, which must all share a
// structurally equal schema. This translator only ever builds a Union
// from "UNION ALL"; there is no dedup step.
type Union struct {
	Inputs      []Plan
	SchemaValue sql.Schema
	Alias       string
}

func NewUnion(inputs []Plan, alias string) *Union {
	return &Union{Inputs: inputs, SchemaValue: inputs[0].Schema(), Alias: alias}
}

func (u *Union) Schema() sql.Schema { return u.SchemaValue }

func (u *Union) Children() []Plan { return u.Inputs }

func (u *Union) line() string { return "Union" }

func (u *Union) String() string { return render(u, 0) }
