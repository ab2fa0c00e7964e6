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
	"github.com/relplan/sqltorel/sql"
	"github.com/relplan/sqltorel/sql/types"
)

// StringifiedPlan is one row of an Explain's output: a plan
// representation's label and its rendered text.
type StringifiedPlan struct {
	PlanType string
	Plan     string
}

// ExplainSchema is the fixed two-column schema every Explain node
// reports, regardless of the statement it wraps.
var ExplainSchema = sql.Schema{
	{Name: "plan_type", Type: types.Utf8, Nullable: false},
	{Name: "plan", Type: types.Utf8, Nullable: false},
}

// Explain wraps the plan for stmt without executing it, reporting its
// formatted text as a row of StringifiedPlans.
type Explain struct {
	Verbose          bool
	Plan             Plan
	StringifiedPlans []StringifiedPlan
}

func NewExplain(verbose bool, wrapped Plan) *Explain {
	return &Explain{
		Verbose: verbose,
		Plan:    wrapped,
		StringifiedPlans: []StringifiedPlan{
			{PlanType: "LogicalPlan", Plan: wrapped.String()},
		},
	}
}

func (e *Explain) Schema() sql.Schema { return ExplainSchema }

// Children is empty: an Explain's wrapped plan is never executed, so it
// is not part of the render tree the way a normal child would be.
func (e *Explain) Children() []Plan { return nil }

func (e *Explain) line() string { return "Explain" }

func (e *Explain) String() string { return render(e, 0) }
