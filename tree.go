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

// Package conctree implements an in-memory, concurrent hierarchical
// directory tree: four operations (List, Create, Remove, Move) over
// path-addressed folders, safe for arbitrarily many goroutines to
// call concurrently on overlapping paths.
//
// Every operation is a descent from the root to some target node,
// using hand-over-hand reader locking (acquire the child's lock
// before releasing the parent's). The operation's mutation point is
// upgraded to writer mode; Move additionally locks the lowest common
// ancestor of its source and target as a writer first, to make
// concurrent moves with overlapping subtrees deadlock-free.
//
// Non-goals: persistence, cross-process access, symbolic links,
// ordering among siblings, and fairness beyond the bounded-waiting
// property the per-node synchronizer provides. Each operation is
// atomic on its own; there is no multi-operation transaction.
package conctree

import (
	"github.com/dijkstracula/conctree/conctreelog"
	"github.com/dijkstracula/conctree/internal/pathutil"
)

// Tree is a rooted, in-memory hierarchy of folders addressed by
// slash-delimited paths. The zero value is not usable; construct one
// with New.
type Tree struct {
	root *Node
	log  conctreelog.Log
}

// New returns an empty Tree with a single root folder "/". log may be
// nil, in which case every operation logs nothing.
func New(log conctreelog.Log) *Tree {
	if log == nil {
		log = conctreelog.Discard{}
	}
	return &Tree{root: newNode("", log), log: log}
}

// readerDescend walks from t.root to the node named by path, holding
// each node as a reader in turn (acquiring the child before releasing
// the parent). It returns the final node still held as reader. The
// caller must eventually call RUnlock on it.
func (t *Tree) readerDescend(path string) (*Node, error) {
	cur := t.root
	cur.sync.RLock()
	rest := path
	for {
		comp, next, ok := pathutil.Split(rest)
		if !ok {
			return cur, nil
		}
		child, found := cur.childNode(comp)
		if !found {
			cur.sync.RUnlock()
			return nil, errNotFound(path)
		}
		child.sync.RLock()
		cur.sync.RUnlock()
		cur = child
		rest = next
	}
}

// writerDescendFrom is readerDescend's writer-mode counterpart, used
// by Move to lock every node strictly between its already-held lowest
// common ancestor and an operand's parent.
//
// parent must already be held as writer by the caller; that hold is
// untouched by this function. If relPath names no further components
// (relPath == "/"), parent *is* the target and is returned unchanged.
// Otherwise the first component is looked up under parent and
// writer-locked, and the descent continues hand-over-hand (lock
// child, unlock current) through any remaining components; every
// intermediate node other than parent is unlocked as the descent
// passes through it. The final node is returned still held as writer.
func (t *Tree) writerDescendFrom(parent *Node, relPath string) (*Node, error) {
	comp, rest, ok := pathutil.Split(relPath)
	if !ok {
		return parent, nil
	}
	cur, found := parent.childNode(comp)
	if !found {
		return nil, errNotFound(relPath)
	}
	cur.sync.Lock()
	for {
		comp, next, ok := pathutil.Split(rest)
		if !ok {
			return cur, nil
		}
		child, found := cur.childNode(comp)
		if !found {
			cur.sync.Unlock()
			return nil, errNotFound(relPath)
		}
		child.sync.Lock()
		cur.sync.Unlock()
		cur = child
		rest = next
	}
}
