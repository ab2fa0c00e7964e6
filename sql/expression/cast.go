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
	"fmt"

	"github.com/relplan/sqltorel/sql"
	"github.com/relplan/sqltorel/sql/types"
)

// Cast is `CAST(Expr AS DataType)`, with DataType already resolved to a
// physical type by the TypeMapper.
type Cast struct {
	Expr     Expression
	DataType types.DataType
}

func NewCast(expr Expression, dt types.DataType) *Cast { return &Cast{Expr: expr, DataType: dt} }

func (c *Cast) String() string {
	return fmt.Sprintf("CAST(%s AS %s)", c.Expr.String(), c.DataType.String())
}

func (c *Cast) Name(schema sql.Schema) (string, error) {
	inner, err := c.Expr.Name(schema)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("CAST(%s AS %s)", inner, c.DataType.String()), nil
}
