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

// Package testschema is a fixed, in-memory sql.SchemaProvider used by
// the translator's own tests, grounded on the original planner's own
// MockSchemaProvider test harness and on the shape of the pack's other
// hand-rolled catalog fixtures (aryamaansaha-golap's CSV-derived schema
// map, go-mysql-server's memory package). It is not meant to grow into
// a real catalog; it exists so planbuilder's tests have a table and a
// function to resolve identifiers and calls against.
package testschema

import (
	"strings"

	"github.com/relplan/sqltorel/sql"
	"github.com/relplan/sqltorel/sql/types"
)

// Provider is a sql.SchemaProvider backed by a fixed table and function
// map.
type Provider struct {
	tables    map[string]sql.Schema
	scalars   map[string]sql.ScalarFunctionMeta
	aggregate map[string]sql.AggregateFunctionMeta
}

// New returns a Provider preloaded with the "person" and
// "aggregate_test_100" tables and a "my_sqrt" scalar UDF, matching the
// tables and UDF the original planner's own test suite exercises.
func New() *Provider {
	p := &Provider{
		tables:    map[string]sql.Schema{},
		scalars:   map[string]sql.ScalarFunctionMeta{},
		aggregate: map[string]sql.AggregateFunctionMeta{},
	}
	p.tables["person"] = sql.Schema{
		{Name: "id", Type: types.Int64, Nullable: false},
		{Name: "first_name", Type: types.Utf8, Nullable: false},
		{Name: "last_name", Type: types.Utf8, Nullable: false},
		{Name: "age", Type: types.Int32, Nullable: false},
		{Name: "state", Type: types.Utf8, Nullable: false},
		{Name: "salary", Type: types.Float64, Nullable: false},
		{Name: "birth_date", Type: types.TimestampNanosecond, Nullable: false},
	}
	p.tables["aggregate_test_100"] = aggregateTest100Schema()
	p.scalars["my_sqrt"] = scalarFunc{name: "my_sqrt", ret: types.Float64}
	return p
}

func aggregateTest100Schema() sql.Schema {
	names := []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9", "c10", "c11", "c12", "c13"}
	fields := make(sql.Schema, len(names))
	for i, n := range names {
		t := types.Utf8
		switch n {
		case "c1":
			t = types.Utf8
		case "c5", "c6", "c7", "c8", "c9":
			t = types.Int64
		case "c11", "c12":
			t = types.Float64
		default:
			t = types.Int32
		}
		fields[i] = sql.Field{Name: n, Type: t, Nullable: false}
	}
	return fields
}

func (p *Provider) GetTableMeta(name string) (sql.Schema, bool) {
	s, ok := p.tables[name]
	return s, ok
}

func (p *Provider) GetFunctionMeta(name string) (sql.ScalarFunctionMeta, bool) {
	m, ok := p.scalars[strings.ToLower(name)]
	if ok {
		return m, true
	}
	m, ok = p.scalars[name]
	return m, ok
}

func (p *Provider) GetAggregateMeta(name string) (sql.AggregateFunctionMeta, bool) {
	m, ok := p.aggregate[strings.ToLower(name)]
	if ok {
		return m, true
	}
	m, ok = p.aggregate[name]
	return m, ok
}

type scalarFunc struct {
	name string
	ret  types.DataType
}

func (f scalarFunc) FuncName() string           { return f.name }
func (f scalarFunc) ReturnType() types.DataType { return f.ret }

var _ sql.SchemaProvider = (*Provider)(nil)
