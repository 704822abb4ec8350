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

// Package conctreelog defines the logging interface used by conctree.
// Callers adapt the logging framework of their choice into this
// interface; conctreelog/logrus does so for logrus. Logging is
// organized by topic so a disabled topic costs a bitmask test, not a
// formatted log line.
package conctreelog

// Topic is a bitmask selecting which category of event gets logged.
type Topic int

const (
	// TopicCall logs the arguments of an operation invocation.
	TopicCall Topic = 1 << iota

	// TopicLock logs blocking and admission decisions made by a
	// node's synchronizer.
	TopicLock

	// TopicVerdict logs the result code an operation returns.
	TopicVerdict
)

// AllTopics enables every topic.
const AllTopics = TopicCall | TopicLock | TopicVerdict

// Fields is a shorthand for structured log attributes.
type Fields = map[string]any

// Log is the logging interface conctree depends on.
type Log interface {
	// Enabled reports whether any of the given topics is active.
	Enabled(Topic) bool

	// Log emits msg with fields under the given topic, if enabled.
	Log(topic Topic, msg string, fields Fields)
}

// Discard is the no-op Log used by default.
type Discard struct{}

func (Discard) Enabled(Topic) bool        { return false }
func (Discard) Log(Topic, string, Fields) {}

var _ Log = Discard{}
