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

// Package types is the engine's physical type system: the handful of
// DataType values the translator ever produces, and the TypeMapper that
// derives them from SQL type syntax.
//
// A DataType is a comparable value (safe to use with ==), which is what
// lets Schema.Equal do a cheap structural comparison for the Union
// invariant.
package types

// DataType is a physical type in the engine's type system. Only the
// variants this translator emits are represented; there is no general
// registry because the translator's output vocabulary is fixed (see the
// TypeMapper table).
type DataType struct {
	name string
}

func (d DataType) String() string { return d.name }

var (
	Boolean              = DataType{"Boolean"}
	Int16                = DataType{"Int16"}
	Int32                = DataType{"Int32"}
	Int64                = DataType{"Int64"}
	UInt8                = DataType{"UInt8"}
	Float32              = DataType{"Float32"}
	Float64              = DataType{"Float64"}
	Utf8                 = DataType{"Utf8"}
	Date64Day            = DataType{"Date64(Day)"}
	Date64Millisecond    = DataType{"Date64(Millisecond)"}
	Time64Millisecond    = DataType{"Time64(Millisecond)"}
	TimestampNanosecond  = DataType{"Timestamp(Nanosecond, None)"}
)
