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
	"github.com/dijkstracula/conctree/internal/pathutil"
)

// Remove deletes the empty folder at path. It fails with ErrNotEmpty
// if the folder has children and ErrBusy if path is the root.
//
// Once the parent is held as writer, no new operation can reach the
// victim node - the only path to it runs through the parent - so it
// is safe to wait for the victim to become quiescent (every operation
// already inside it has exited) before unlinking it.
func (t *Tree) Remove(path string) error {
	if t.log.Enabled(conctreelog.TopicCall) {
		t.log.Log(conctreelog.TopicCall, "Remove", conctreelog.Fields{"path": path})
	}
	err := t.remove(path)
	if t.log.Enabled(conctreelog.TopicVerdict) {
		t.log.Log(conctreelog.TopicVerdict, "Remove", conctreelog.Fields{"path": path, "err": err})
	}
	return err
}

func (t *Tree) remove(path string) error {
	if path == pathutil.Root {
		return errBusy(path)
	}
	if !pathutil.Valid(path) {
		return errInvalidArgument(path)
	}

	parentPath, victimName, _ := pathutil.ToParent(path)
	grandparentPath, parentName, hasGrandparent := pathutil.ToParent(parentPath)

	var parent *Node
	if !hasGrandparent {
		parent = t.root
		parent.sync.Lock()
	} else {
		grandparent, err := t.readerDescend(grandparentPath)
		if err != nil {
			return err
		}
		p, found := grandparent.childNode(parentName)
		if !found {
			grandparent.sync.RUnlock()
			return errNotFound(parentPath)
		}
		p.sync.Lock()
		grandparent.sync.RUnlock()
		parent = p
	}
	defer parent.sync.Unlock()

	victim, found := parent.childNode(victimName)
	if !found {
		return errNotFound(path)
	}

	victim.sync.QuiesceWait()

	if victim.children.Size() != 0 {
		return errNotEmpty(path)
	}

	parent.children.Remove(victimName)
	return nil
}
