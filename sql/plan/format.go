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

import "strings"

// describable is the per-node-type half of formatting: just this node's
// own header line, with no indentation and no children. render handles
// indentation and recursion uniformly so every node type's exported
// String() is a one-liner: `return render(n, 0)`.
type describable interface {
	line() string
}

func render(p Plan, depth int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	if d, ok := p.(describable); ok {
		sb.WriteString(d.line())
	}
	for _, c := range p.Children() {
		sb.WriteString("\n")
		sb.WriteString(render(c, depth+1))
	}
	return sb.String()
}
