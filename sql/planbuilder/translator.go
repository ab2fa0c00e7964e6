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

// Package planbuilder is the translator's core: it lowers a parsed SQL
// AST into a logical plan tree, against a catalog (sql.SchemaProvider)
// and via the plan package's Builder. Nothing here executes a query; it
// only ever produces or rejects a plan.
package planbuilder

import (
	"github.com/sirupsen/logrus"

	"github.com/relplan/sqltorel/sql"
)

// Translator lowers statements and expressions against a fixed catalog.
// It holds no mutable state of its own and may be reused across many
// statements, sequentially (spec.md §5).
type Translator struct {
	provider sql.SchemaProvider
	log      *logrus.Entry
	strict   bool
}

// Option configures a Translator at construction time.
type Option func(*Translator)

// WithLogger attaches a structured logger. When set, StatementToPlan
// emits one Debug-level line per call recording the statement kind and
// outcome; this is pure observability and never changes behavior.
func WithLogger(log *logrus.Entry) Option {
	return func(t *Translator) { t.log = log }
}

// WithStrictMode controls which schema a resolved `alias.column`
// compound identifier's column is looked up against, once alias itself
// is a known key of the aliased-schema map (spec.md §9 open question 4).
// In the default, non-strict mode, column is looked up against the
// current top-level schema, matching the source this was adapted from.
// In strict mode, column is looked up against the alias's own schema
// instead. An alias absent from the map is a Plan error either way.
func WithStrictMode(strict bool) Option {
	return func(t *Translator) { t.strict = strict }
}

// New builds a Translator backed by provider.
func New(provider sql.SchemaProvider, opts ...Option) *Translator {
	t := &Translator{provider: provider}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
