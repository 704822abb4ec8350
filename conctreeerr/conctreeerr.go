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

// Package conctreeerr defines the sentinel errors returned by the
// conctree tree operations. Operations wrap a sentinel with call-site
// context via github.com/pkg/errors, so callers can still recover the
// sentinel with errors.Is while getting a readable message.
package conctreeerr

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument means a path argument failed the path grammar.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound means some intermediate or final path component does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists means the target name is already present, or
	// the target of a create/move is the root.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotEmpty means a remove target still has children.
	ErrNotEmpty = errors.New("not empty")

	// ErrBusy means the source of a remove/move is the root.
	ErrBusy = errors.New("busy")

	// ErrMoveIntoOwnSubtree means a move's target lies strictly inside
	// its source subtree.
	ErrMoveIntoOwnSubtree = errors.New("target is inside source subtree")
)
