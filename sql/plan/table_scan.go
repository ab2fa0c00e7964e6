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

package plan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/relplan/sqltorel/sql"
)

// TableScan reads a named table out of a catalog. CatalogName is always
// "default": this translator never addresses more than one catalog, but
// keeps the field for fidelity with the node's full shape.
type TableScan struct {
	CatalogName string
	TableName   string
	SchemaValue sql.Schema
	Projection  []int
	Alias       string
}

func NewTableScan(name string, schema sql.Schema, alias string) *TableScan {
	return &TableScan{CatalogName: "default", TableName: name, SchemaValue: schema, Alias: alias}
}

func (t *TableScan) Schema() sql.Schema { return t.SchemaValue }

func (t *TableScan) Children() []Plan { return nil }

func (t *TableScan) line() string {
	proj := "None"
	if t.Projection != nil {
		idx := make([]string, len(t.Projection))
		for i, p := range t.Projection {
			idx[i] = strconv.Itoa(p)
		}
		proj = "Some([" + strings.Join(idx, ", ") + "])"
	}
	return fmt.Sprintf("TableScan: %s projection=%s", t.TableName, proj)
}

func (t *TableScan) String() string { return render(t, 0) }
