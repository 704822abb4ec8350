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

import "github.com/dijkstracula/conctree/conctreelog"

// frame is one level of the explicit work stack Free uses in place of
// native recursion, so a pathologically deep tree cannot exhaust the
// goroutine's call stack.
type frame struct {
	node *Node
	keys []string
	idx  int
}

// Free tears the tree down, dropping every node's references to its
// children so they become collectible without waiting for the whole
// tree to fall out of scope at once. The caller must ensure no
// goroutine is still operating on the tree; Free takes no locks and
// its behavior is undefined if that precondition is violated.
func (t *Tree) Free() {
	t.log.Log(conctreelog.TopicCall, "Free", nil)

	stack := []*frame{{node: t.root, keys: t.root.children.Keys()}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.idx < len(top.keys) {
			key := top.keys[top.idx]
			top.idx++
			v, ok := top.node.children.Get(key)
			if !ok {
				continue
			}
			child := v.(*Node)
			stack = append(stack, &frame{node: child, keys: child.children.Keys()})
			continue
		}
		// Post-order: every child of top.node has already been freed.
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := stack[len(stack)-1].node
			parent.children.Remove(top.node.name)
		}
	}
}
