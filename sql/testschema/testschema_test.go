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

package testschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonSchema(t *testing.T) {
	p := New()
	schema, ok := p.GetTableMeta("person")
	assert.True(t, ok)
	assert.Equal(t, []string{"id", "first_name", "last_name", "age", "state", "salary", "birth_date"}, schema.Names())
}

func TestAggregateTest100Schema(t *testing.T) {
	p := New()
	schema, ok := p.GetTableMeta("aggregate_test_100")
	assert.True(t, ok)
	assert.Len(t, schema, 13)
}

func TestUnknownTableMisses(t *testing.T) {
	p := New()
	_, ok := p.GetTableMeta("nope")
	assert.False(t, ok)
}

func TestScalarFunctionLookupFallsBackCase(t *testing.T) {
	p := New()
	meta, ok := p.GetFunctionMeta("my_sqrt")
	assert.True(t, ok)
	assert.Equal(t, "my_sqrt", meta.FuncName())

	meta, ok = p.GetFunctionMeta("MY_SQRT")
	assert.True(t, ok)
	assert.Equal(t, "my_sqrt", meta.FuncName())
}

func TestAggregateFunctionLookupAlwaysMisses(t *testing.T) {
	p := New()
	_, ok := p.GetAggregateMeta("anything")
	assert.False(t, ok)
}
