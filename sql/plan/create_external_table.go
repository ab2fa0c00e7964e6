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

	"github.com/relplan/sqltorel/ast"
	"github.com/relplan/sqltorel/sql"
)

// CreateExternalTable registers a table backed by a file or directory
// on external storage. It carries no input: it is a leaf the plan
// tree's top is built from directly, never wrapped.
type CreateExternalTable struct {
	Name        string
	SchemaValue sql.Schema
	Location    string
	FileType    ast.FileType
	HasHeader   bool
}

func NewCreateExternalTable(name string, schema sql.Schema, location string, fileType ast.FileType, hasHeader bool) *CreateExternalTable {
	return &CreateExternalTable{Name: name, SchemaValue: schema, Location: location, FileType: fileType, HasHeader: hasHeader}
}

func (c *CreateExternalTable) Schema() sql.Schema { return c.SchemaValue }

func (c *CreateExternalTable) Children() []Plan { return nil }

func (c *CreateExternalTable) line() string {
	return fmt.Sprintf("CreateExternalTable: %s", c.Name)
}

func (c *CreateExternalTable) String() string { return render(c, 0) }
