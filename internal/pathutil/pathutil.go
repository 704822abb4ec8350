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

// Package pathutil validates and decomposes the slash-delimited paths
// that address folders in a conctree.Tree. A valid path begins and ends
// with '/', contains only '/' and lowercase ASCII letters, and every
// component between consecutive slashes has length in [1, MaxName].
package pathutil

import "strings"

// MaxName is the maximum length, in bytes, of a single path component.
const MaxName = 255

// Root is the path of the tree's root folder.
const Root = "/"

// Valid reports whether p obeys the path grammar: nonempty, starts and
// ends with '/', contains only '/' and 'a'-'z', and every component is
// between 1 and MaxName bytes.
func Valid(p string) bool {
	if len(p) == 0 || p[0] != '/' || p[len(p)-1] != '/' {
		return false
	}
	componentLen := 0
	for i := 0; i < len(p); i++ {
		c := p[i]
		switch {
		case c == '/':
			if i > 0 {
				if componentLen == 0 || componentLen > MaxName {
					return false
				}
			}
			componentLen = 0
		case c >= 'a' && c <= 'z':
			componentLen++
		default:
			return false
		}
	}
	return true
}

// Split peels the first component off p, which must start with '/'.
// It returns the component name and the remaining suffix, itself a
// valid path starting with '/'. ok is false when p is the root path
// and there is no further component to peel.
func Split(p string) (component, rest string, ok bool) {
	if p == Root {
		return "", "", false
	}
	// p[0] == '/'; find the next '/' after the first component.
	end := strings.IndexByte(p[1:], '/')
	end++ // account for the slice offset
	return p[1:end], p[end:], true
}

// Components returns the path's components in order, root yielding
// an empty slice.
func Components(p string) []string {
	var out []string
	rest := p
	for {
		c, next, ok := Split(rest)
		if !ok {
			return out
		}
		out = append(out, c)
		rest = next
	}
}

// ToParent splits a non-root path p into the name of its final
// component and the path of its parent. ok is false when p is the
// root path, which has no parent.
func ToParent(p string) (parent, name string, ok bool) {
	if p == Root {
		return "", "", false
	}
	// Find the last '/' before the trailing one.
	idx := strings.LastIndexByte(p[:len(p)-1], '/')
	return p[:idx+1], p[idx+1 : len(p)-1], true
}

// LowestCommonAncestor returns the longest path that is a prefix of
// both a and b and ends on a '/' boundary.
func LowestCommonAncestor(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	for a[i-1] != '/' {
		i--
	}
	return a[:i]
}

// IsStrictPrefix reports whether child lies strictly inside the
// subtree rooted at parent: parent is a proper, slash-aligned prefix
// of child.
func IsStrictPrefix(parent, child string) bool {
	return len(child) > len(parent) && strings.HasPrefix(child, parent)
}
