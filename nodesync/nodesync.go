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

// Package nodesync implements the per-node reader/writer/quiescer
// coordinator that a conctree.Node uses to synchronize concurrent
// traversals.
//
// Every node in the tree supports three roles: reader (non-mutating,
// any number concurrently), writer (exclusive over the node's
// children map), and quiescer (a one-shot wait for the node to become
// fully idle - no reader or writer active or queued - used before a
// structural removal or splice). Readers and writers alternate in
// batches: when a writer releases the node, every reader that was
// already waiting is admitted as one batch before the next writer can
// proceed, and vice versa. This bounds how long either role can be
// starved by a stream of the other.
//
// The alternation is implemented with a single mutex, three condition
// variables (one per role), and a signed `change` field that lets an
// exiting holder hand admission directly to the next batch: a
// just-woken waiter doesn't have to re-check whether it was the one
// meant to be admitted, because change says so atomically with the
// wakeup.
package nodesync

import (
	"sync"

	"github.com/dijkstracula/conctree/conctreelog"
)

// Synchronizer coordinates reader, writer, and quiescer access to a
// single tree node. The zero value is not usable; construct one with
// New.
type Synchronizer struct {
	mtx        sync.Mutex
	readers    sync.Cond
	writers    sync.Cond
	quiescence sync.Cond

	rcount, wcount int // active readers / writers (wcount is 0 or 1)
	rwait, wwait   int // queued readers / writers

	// change > 0 means that many readers have already been granted
	// admission by the previous holder and must bypass the usual
	// wait predicate. change == -1 means one writer has been granted
	// admission. change == 0 means no handover is in force.
	change int

	log   conctreelog.Log
	label string
}

// New returns a Synchronizer with no active or queued holders. log
// may be nil, in which case logging is a no-op.
func New(label string, log conctreelog.Log) *Synchronizer {
	if log == nil {
		log = conctreelog.Discard{}
	}
	s := &Synchronizer{log: log, label: label}
	s.readers.L = &s.mtx
	s.writers.L = &s.mtx
	s.quiescence.L = &s.mtx
	return s
}

// RLock enters the node as a reader, blocking while a writer holds or
// is queued for the node (unless this reader was already handed
// admission by the previous holder's exit).
func (s *Synchronizer) RLock() {
	s.mtx.Lock()
	for s.change <= 0 && (s.wcount > 0 || s.wwait > 0) {
		s.rwait++
		if s.log.Enabled(conctreelog.TopicLock) {
			s.log.Log(conctreelog.TopicLock, "reader blocked", conctreelog.Fields{"node": s.label})
		}
		s.readers.Wait()
		s.rwait--
	}
	s.rcount++
	if s.change > 0 {
		s.change--
		if s.change > 0 {
			// Cascade the wakeup to the rest of this batch.
			s.readers.Signal()
		}
	}
	s.mtx.Unlock()
}

// RUnlock exits the node as a reader. If this was the last active
// reader and a writer is queued, it is handed admission; if this was
// the last active reader and nothing is queued, any quiescence waiter
// is woken.
func (s *Synchronizer) RUnlock() {
	s.mtx.Lock()
	s.rcount--
	switch {
	case s.rcount == 0 && s.wwait > 0:
		s.change = -1
		s.writers.Signal()
	case s.rcount == 0:
		s.quiescence.Signal()
	}
	s.mtx.Unlock()
}

// Lock enters the node as a writer, blocking while any reader or
// writer is active (unless this writer was already handed admission).
func (s *Synchronizer) Lock() {
	s.mtx.Lock()
	for s.change != -1 && (s.wcount > 0 || s.rcount > 0) {
		s.wwait++
		if s.log.Enabled(conctreelog.TopicLock) {
			s.log.Log(conctreelog.TopicLock, "writer blocked", conctreelog.Fields{"node": s.label})
		}
		s.writers.Wait()
		s.wwait--
	}
	s.wcount++
	s.change = 0
	s.mtx.Unlock()
}

// Unlock exits the node as a writer. Any queued readers are admitted
// as a single batch; failing that, one queued writer is admitted;
// failing that, any quiescence waiter is woken.
func (s *Synchronizer) Unlock() {
	s.mtx.Lock()
	s.wcount--
	switch {
	case s.rwait > 0:
		s.change = s.rwait
		s.readers.Signal()
	case s.wwait > 0:
		s.change = -1
		s.writers.Signal()
	default:
		s.quiescence.Signal()
	}
	s.mtx.Unlock()
}

// QuiesceWait blocks until the node has no active or queued reader or
// writer. It is used after the caller has already taken the node's
// parent as a writer, which guarantees no new operation can reach
// this node; anything already inside it will eventually exit and,
// being the last to do so, signal quiescence.
func (s *Synchronizer) QuiesceWait() {
	s.mtx.Lock()
	for s.rcount != 0 || s.rwait != 0 || s.wcount != 0 || s.wwait != 0 {
		s.quiescence.Wait()
	}
	s.mtx.Unlock()
}
