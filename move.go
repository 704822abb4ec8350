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

// Move relocates the folder at source to target, preserving its
// contents and descendants. Moving a path to itself is a no-op.
// Moving a folder into its own subtree is rejected.
//
// Concurrent moves are serialized first on the lowest common ancestor
// of their source and target paths: every Move writer-locks that node
// before touching either operand, which collapses the deadlock case
// of two moves whose paths interlock (A into B, B into A at the same
// time) into an ordinary contention on a single shared node.
func (t *Tree) Move(source, target string) error {
	if t.log.Enabled(conctreelog.TopicCall) {
		t.log.Log(conctreelog.TopicCall, "Move", conctreelog.Fields{"source": source, "target": target})
	}
	err := t.move(source, target)
	if t.log.Enabled(conctreelog.TopicVerdict) {
		t.log.Log(conctreelog.TopicVerdict, "Move", conctreelog.Fields{"source": source, "target": target, "err": err})
	}
	return err
}

func (t *Tree) move(source, target string) error {
	if source == pathutil.Root {
		return errBusy(source)
	}
	if target == pathutil.Root {
		return errAlreadyExists(target)
	}
	if !pathutil.Valid(source) {
		return errInvalidArgument(source)
	}
	if !pathutil.Valid(target) {
		return errInvalidArgument(target)
	}
	if pathutil.IsStrictPrefix(source, target) {
		return errMoveIntoOwnSubtree(source, target)
	}
	if source == target {
		return nil
	}

	lca := pathutil.LowestCommonAncestor(source, target)

	lcaParentPath, lcaName, lcaHasParent := pathutil.ToParent(lca)

	var lcaNode *Node
	if !lcaHasParent {
		lcaNode = t.root
		lcaNode.sync.Lock()
	} else {
		lcaParent, err := t.readerDescend(lcaParentPath)
		if err != nil {
			return err
		}
		n, found := lcaParent.childNode(lcaName)
		if !found {
			lcaParent.sync.RUnlock()
			return errNotFound(lca)
		}
		n.sync.Lock()
		lcaParent.sync.RUnlock()
		lcaNode = n
	}
	lcaHeld := true
	releaseLCA := func() {
		if lcaHeld {
			lcaNode.sync.Unlock()
			lcaHeld = false
		}
	}
	defer releaseLCA()

	sourceParentPath, sourceName, _ := pathutil.ToParent(source)

	// Relative path from the LCA down to source's parent: the LCA is a
	// boundary-aligned prefix of source, so stripping its length minus
	// the trailing slash it shares with the suffix leaves a valid path
	// starting with '/'.
	relSourceParent := sourceParentPath[len(lca)-1:]

	// target names an existing ancestor of source (lca == target):
	// target's parent then lies *above* the LCA, which we no longer
	// hold the lock chain for, so it cannot be reached by descent from
	// here. But whether target is "already occupied" still hinges on
	// source actually existing underneath it: if source doesn't exist,
	// the right answer is not-found for source, not already-exists for
	// an ancestor we haven't confirmed has anything to move. Resolve
	// that by walking down to source itself before deciding.
	if lca == target {
		sourceParent, err := t.writerDescendFrom(lcaNode, relSourceParent)
		if err != nil {
			return err
		}
		if sourceParent != lcaNode {
			defer sourceParent.sync.Unlock()
		}
		if _, found := sourceParent.childNode(sourceName); !found {
			return errNotFound(source)
		}
		return errAlreadyExists(target)
	}

	targetParentPath, targetName, _ := pathutil.ToParent(target)

	// Relative path from the LCA down to target's parent. Safe here
	// (unlike above) because lca != target means lca is a strictly
	// shorter, slash-aligned prefix of target, so len(lca) is at most
	// len(targetParentPath).
	relTargetParent := targetParentPath[len(lca)-1:]

	targetParentIsLCA := relTargetParent == pathutil.Root
	var targetParent *Node
	if targetParentIsLCA {
		targetParent = lcaNode
	} else {
		tp, err := t.writerDescendFrom(lcaNode, relTargetParent)
		if err != nil {
			return err
		}
		targetParent = tp
	}
	targetParentHeld := !targetParentIsLCA
	defer func() {
		if targetParentHeld {
			targetParent.sync.Unlock()
		}
	}()

	if _, exists := targetParent.childNode(targetName); exists {
		return errAlreadyExists(target)
	}

	sourceParentIsLCA := relSourceParent == pathutil.Root
	var sourceParent *Node
	if sourceParentIsLCA {
		sourceParent = lcaNode
	} else {
		sp, err := t.writerDescendFrom(lcaNode, relSourceParent)
		if err != nil {
			return err
		}
		sourceParent = sp
	}
	sourceParentHeld := !sourceParentIsLCA
	defer func() {
		if sourceParentHeld {
			sourceParent.sync.Unlock()
		}
	}()

	sourceNode, found := sourceParent.childNode(sourceName)
	if !found {
		return errNotFound(source)
	}

	// Once both operand parents are held as writers, the splice touches
	// only their children maps, so the LCA is released here unless it
	// IS one of the operand parents. The nodes between the LCA and each
	// operand parent were already unlocked hand-over-hand by
	// writerDescendFrom and are not held at this point.
	if !targetParentIsLCA && !sourceParentIsLCA {
		releaseLCA()
	}

	sourceNode.sync.QuiesceWait()

	moved := newNode(targetName, t.log)
	moved.children = sourceNode.children

	targetParent.children.Insert(targetName, moved)
	sourceParent.children.Remove(sourceName)

	return nil
}
