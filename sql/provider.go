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

import "github.com/relplan/sqltorel/sql/types"

// ScalarFunctionMeta describes a user-defined scalar function as the
// catalog reports it. The translator only needs enough to build a
// ScalarUDF expression node; it never evaluates the function.
type ScalarFunctionMeta interface {
	// FuncName is the name the function was registered under.
	FuncName() string
	// ReturnType is the function's declared return type.
	ReturnType() types.DataType
}

// AggregateFunctionMeta describes a user-defined aggregate function.
type AggregateFunctionMeta interface {
	FuncName() string
	ReturnType() types.DataType
}

// SchemaProvider is the catalog capability the translator consumes. It
// is supplied by the caller; this module never implements a catalog of
// its own beyond the sql/testschema fixture used by its tests.
type SchemaProvider interface {
	// GetTableMeta returns the schema of the named table, if known.
	GetTableMeta(name string) (schema Schema, ok bool)
	// GetFunctionMeta returns the descriptor of a user-defined scalar
	// function, if one is registered under name.
	GetFunctionMeta(name string) (meta ScalarFunctionMeta, ok bool)
	// GetAggregateMeta returns the descriptor of a user-defined
	// aggregate function, if one is registered under name.
	GetAggregateMeta(name string) (meta AggregateFunctionMeta, ok bool)
}
