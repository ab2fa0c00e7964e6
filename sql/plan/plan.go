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

// Package plan holds the logical plan tree the translator emits: a
// tagged tree of node types, each carrying its own output Schema, plus
// the Builder that a StatementLowerer/SelectPipeline drives to
// assemble one bottom-up.
package plan

import "github.com/relplan/sqltorel/sql"

// Plan is a node in the logical plan tree.
type Plan interface {
	// Schema is this node's output schema.
	Schema() sql.Schema
	// Children is this node's direct inputs, in the fixed order the
	// node type defines them.
	Children() []Plan
	// String renders the node and its subtree the way
	// statement_to_plan's callers expect to see it: one line per node,
	// children indented two spaces deeper than their parent.
	String() string
}
