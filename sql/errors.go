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

package sql

import "gopkg.in/src-d/go-errors.v1"

// The translator's error taxonomy (spec §7). Callers classify an error
// by kind with ErrXxx.Is, never by matching message text.
var (
	// ErrNotImplemented marks a syntactically valid construct this
	// translator does not support (multiple FROM tables, HAVING,
	// anything but UNION ALL, window functions, ...).
	ErrNotImplemented = errors.NewKind("%s")

	// ErrPlan marks SQL that is semantically invalid against the
	// catalog: unknown identifiers, unknown functions, a projection
	// that doesn't agree with its GROUP BY.
	ErrPlan = errors.NewKind("%s")

	// ErrGeneral marks a semantic violation that isn't a catalog
	// lookup failure: an out-of-range GROUP BY ordinal, grouping by an
	// aggregate, a malformed UNION.
	ErrGeneral = errors.NewKind("%s")

	// ErrInternal marks an invariant violation inside the translator
	// itself, not a problem with the input SQL.
	ErrInternal = errors.NewKind("%s")
)
