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
	"github.com/dijkstracula/conctree/conctreelog"
	"github.com/dijkstracula/conctree/internal/childmap"
	"github.com/dijkstracula/conctree/nodesync"
)

// Node is a single folder in a Tree: a children map owned exclusively
// by whoever holds the node's synchronizer as a writer, plus the
// synchronizer itself. Nodes carry no parent back-reference; every
// operation derives parents by re-walking the path from the root, so
// the ownership graph stays acyclic and removal/move never has to
// fix up a back-pointer.
type Node struct {
	name     string
	children *childmap.Map
	sync     *nodesync.Synchronizer
}

func newNode(name string, log conctreelog.Log) *Node {
	return &Node{
		name:     name,
		children: childmap.New(),
		sync:     nodesync.New(name, log),
	}
}

// childNode fetches the child named key, already type-asserted. It
// panics if key is present but not a *Node, which would indicate a
// bug elsewhere in this package - the childmap contract never stores
// anything else.
func (n *Node) childNode(key string) (*Node, bool) {
	v, ok := n.children.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*Node), true
}
