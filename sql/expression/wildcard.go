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

import "github.com/relplan/sqltorel/sql"

// Wildcard is `*` in a projection list. Builder.Project expands it into
// one Column per input-schema field before it ever reaches a plan node,
// so it should not normally survive past SelectPipeline's projection
// lowering step; it exists as an Expression so that step can hand it
// off uniformly like every other projected item.
type Wildcard struct{}

func NewWildcard() *Wildcard { return &Wildcard{} }

func (w *Wildcard) String() string { return "*" }

func (w *Wildcard) Name(sql.Schema) (string, error) { return "*", nil }
