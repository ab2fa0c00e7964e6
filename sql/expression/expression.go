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

// Package expression holds the relational expression tree the
// translator lowers SQL scalar expressions into, plus the two
// formatters every node implements: a human-readable Display-style
// String(), and a deterministic, schema-independent-where-possible
// Name() used for aggregate deduplication and schema field naming.
//
// Name and String deliberately diverge for composite nodes: a Column's
// String is "#name" (how it reads inside a rendered plan), but its Name
// is the bare field name (how it reads as a schema field or a
// deduplication key). Keeping them separate is what lets
// "SELECT COUNT(state), state ... GROUP BY state" project a Column
// named "COUNT(state)" while still displaying it as "#COUNT(state)".
package expression

import "github.com/relplan/sqltorel/sql"

// Expression is a node in the relational expression tree.
type Expression interface {
	// String renders the expression the way it appears inside a
	// rendered plan tree.
	String() string
	// Name computes the expression's canonical, deterministic name.
	// Structurally identical expressions must produce identical names;
	// this is the contract the AggregateAnalyzer's deduplication and
	// the GROUP BY / projection consistency check both depend on.
	Name(schema sql.Schema) (string, error)
}
