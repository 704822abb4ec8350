// Copyright 2020 Nathan Taylor (nbtaylor@gmail.com)
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package conctree

import (
	"strings"

	"github.com/dijkstracula/conctree/conctreelog"
	"github.com/dijkstracula/conctree/internal/pathutil"
)

// List returns the current child component names of the folder named
// by path, comma-separated with no trailing comma and in unspecified
// order, or an error if path is invalid or does not name a folder.
// The listing is a snapshot taken at the instant the node is held as
// reader; it never mutates the tree.
func (t *Tree) List(path string) (string, error) {
	if t.log.Enabled(conctreelog.TopicCall) {
		t.log.Log(conctreelog.TopicCall, "List", conctreelog.Fields{"path": path})
	}

	if !pathutil.Valid(path) {
		return "", errInvalidArgument(path)
	}

	node, err := t.readerDescend(path)
	if err != nil {
		if t.log.Enabled(conctreelog.TopicVerdict) {
			t.log.Log(conctreelog.TopicVerdict, "List", conctreelog.Fields{"path": path, "err": err})
		}
		return "", err
	}
	defer node.sync.RUnlock()

	result := strings.Join(node.children.Keys(), ",")
	if t.log.Enabled(conctreelog.TopicVerdict) {
		t.log.Log(conctreelog.TopicVerdict, "List", conctreelog.Fields{"path": path, "result": result})
	}
	return result, nil
}
