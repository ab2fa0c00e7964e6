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
	"strings"

	"github.com/relplan/sqltorel/sql"
)

// BuiltinScalarFunctions is the set of built-in scalar function names the
// ExprLowerer recognizes, already lowercased. Display keeps the stored
// (lowercase) spelling, matching how "if" reads in a rendered NULLIF
// rewrite.
var BuiltinScalarFunctions = map[string]bool{
	"abs": true, "ceil": true, "floor": true, "round": true, "sqrt": true,
	"exp": true, "ln": true, "log10": true, "log2": true, "power": true,
	"trunc": true, "signum": true,
	"concat": true, "lower": true, "upper": true, "trim": true, "ltrim": true,
	"rtrim": true, "length": true, "substr": true, "replace": true,
	"coalesce": true, "if": true,
}

// BuiltinAggregateFunctions is the set of built-in aggregate function
// names the ExprLowerer recognizes, lowercased. Display upper-cases
// them: "count" is stored, "COUNT" is rendered.
var BuiltinAggregateFunctions = map[string]bool{
	"count": true, "sum": true, "min": true, "max": true, "avg": true,
}

func argsString(args []Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

func argsName(args []Expression, schema sql.Schema) (string, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		n, err := a.Name(schema)
		if err != nil {
			return "", err
		}
		parts[i] = n
	}
	return strings.Join(parts, ", "), nil
}

// ScalarFunction is a call to a built-in scalar function. Fun is the
// lowercased name under which it was resolved, and is displayed as-is.
type ScalarFunction struct {
	Fun  string
	Args []Expression
}

func NewScalarFunction(fun string, args []Expression) *ScalarFunction {
	return &ScalarFunction{Fun: fun, Args: args}
}

func (f *ScalarFunction) String() string {
	return fmt.Sprintf("%s(%s)", f.Fun, argsString(f.Args))
}

func (f *ScalarFunction) Name(schema sql.Schema) (string, error) {
	names, err := argsName(f.Args, schema)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s)", f.Fun, names), nil
}

// AggregateFunction is a call to a built-in aggregate function. Fun is
// the lowercased name under which it was resolved; display and computed
// name both upper-case it ("count" stored, "COUNT(...)" rendered). The
// AggregateAnalyzer treats it as an aggregate match and does not recurse
// into its Args.
type AggregateFunction struct {
	Fun      string
	Distinct bool
	Args     []Expression
}

func NewAggregateFunction(fun string, distinct bool, args []Expression) *AggregateFunction {
	return &AggregateFunction{Fun: fun, Distinct: distinct, Args: args}
}

func (f *AggregateFunction) distinctPrefix() string {
	if f.Distinct {
		return "DISTINCT "
	}
	return ""
}

func (f *AggregateFunction) String() string {
	return fmt.Sprintf("%s(%s%s)", strings.ToUpper(f.Fun), f.distinctPrefix(), argsString(f.Args))
}

func (f *AggregateFunction) Name(schema sql.Schema) (string, error) {
	names, err := argsName(f.Args, schema)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s%s)", strings.ToUpper(f.Fun), f.distinctPrefix(), names), nil
}

// ScalarUDF is a call to a user-registered scalar function.
type ScalarUDF struct {
	Fun  sql.ScalarFunctionMeta
	Args []Expression
}

func NewScalarUDF(fun sql.ScalarFunctionMeta, args []Expression) *ScalarUDF {
	return &ScalarUDF{Fun: fun, Args: args}
}

func (f *ScalarUDF) String() string {
	return fmt.Sprintf("%s(%s)", f.Fun.FuncName(), argsString(f.Args))
}

func (f *ScalarUDF) Name(schema sql.Schema) (string, error) {
	names, err := argsName(f.Args, schema)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s)", f.Fun.FuncName(), names), nil
}

// AggregateUDF is a call to a user-registered aggregate function.
type AggregateUDF struct {
	Fun  sql.AggregateFunctionMeta
	Args []Expression
}

func NewAggregateUDF(fun sql.AggregateFunctionMeta, args []Expression) *AggregateUDF {
	return &AggregateUDF{Fun: fun, Args: args}
}

func (f *AggregateUDF) String() string {
	return fmt.Sprintf("%s(%s)", f.Fun.FuncName(), argsString(f.Args))
}

func (f *AggregateUDF) Name(schema sql.Schema) (string, error) {
	names, err := argsName(f.Args, schema)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s)", f.Fun.FuncName(), names), nil
}
