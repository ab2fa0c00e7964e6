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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relplan/sqltorel/sql"
	"github.com/relplan/sqltorel/sql/types"
)

func TestColumnStringVsName(t *testing.T) {
	c := NewColumn("state")
	assert.Equal(t, "#state", c.String())
	name, err := c.Name(nil)
	assert.NoError(t, err)
	assert.Equal(t, "state", name)
}

func TestAliasNameWinsOverInner(t *testing.T) {
	a := NewAlias(NewColumn("state"), "s")
	assert.Equal(t, "#state AS s", a.String())
	name, err := a.Name(nil)
	assert.NoError(t, err)
	assert.Equal(t, "s", name)
}

func TestBinaryExprRendersOperatorWordForm(t *testing.T) {
	b := NewBinaryExpr(NewColumn("state"), Eq, NewLiteral(NewUtf8("CO")))
	assert.Equal(t, `#state Eq Utf8("CO")`, b.String())
	name, err := b.Name(sql.Schema{})
	assert.NoError(t, err)
	assert.Equal(t, `state Eq Utf8("CO")`, name)
}

func TestAggregateFunctionUppercasesDisplayName(t *testing.T) {
	f := NewAggregateFunction("count", false, []Expression{NewColumn("state")})
	assert.Equal(t, "COUNT(#state)", f.String())
	name, err := f.Name(nil)
	assert.NoError(t, err)
	assert.Equal(t, "COUNT(state)", name)
}

func TestAggregateFunctionDistinctPrefix(t *testing.T) {
	f := NewAggregateFunction("count", true, []Expression{NewColumn("state")})
	assert.Equal(t, "COUNT(DISTINCT #state)", f.String())
}

func TestScalarFunctionKeepsStoredCase(t *testing.T) {
	f := NewScalarFunction("if", []Expression{NewLiteral(NewBoolean(true)), NewColumn("x")})
	assert.Equal(t, "if(Boolean(true), #x)", f.String())
}

func TestSortRendersDirectionAndNulls(t *testing.T) {
	s := NewSort(NewColumn("id"), false, false)
	assert.Equal(t, "#id DESC NULLS LAST", s.String())

	s2 := NewSort(NewColumn("id"), true, true)
	assert.Equal(t, "#id ASC NULLS FIRST", s2.String())
}

func TestCastRendersTargetType(t *testing.T) {
	c := NewCast(NewColumn("id"), types.Int32)
	assert.Equal(t, "CAST(#id AS Int32)", c.String())
}

func TestWildcardNameAndString(t *testing.T) {
	w := NewWildcard()
	assert.Equal(t, "*", w.String())
	name, err := w.Name(nil)
	assert.NoError(t, err)
	assert.Equal(t, "*", name)
}

func TestIsNullAndIsNotNull(t *testing.T) {
	n := NewIsNull(NewColumn("x"))
	assert.Equal(t, "#x IS NULL", n.String())
	nn := NewIsNotNull(NewColumn("x"))
	assert.Equal(t, "#x IS NOT NULL", nn.String())
}

