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
	"github.com/pkg/errors"

	"github.com/dijkstracula/conctree/conctreeerr"
)

func errInvalidArgument(path string) error {
	return errors.Wrapf(conctreeerr.ErrInvalidArgument, "%q", path)
}

func errNotFound(path string) error {
	return errors.Wrapf(conctreeerr.ErrNotFound, "%q", path)
}

func errAlreadyExists(path string) error {
	return errors.Wrapf(conctreeerr.ErrAlreadyExists, "%q", path)
}

func errNotEmpty(path string) error {
	return errors.Wrapf(conctreeerr.ErrNotEmpty, "%q", path)
}

func errBusy(path string) error {
	return errors.Wrapf(conctreeerr.ErrBusy, "%q", path)
}

func errMoveIntoOwnSubtree(source, target string) error {
	return errors.Wrapf(conctreeerr.ErrMoveIntoOwnSubtree, "move %q into %q", source, target)
}
