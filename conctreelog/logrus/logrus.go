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

// Package logrus adapts github.com/sirupsen/logrus into conctreelog.Log.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/dijkstracula/conctree/conctreelog"
)

// Logger wraps a *logrus.Logger, restricting emitted events to Enable.
type Logger struct {
	L      *logrus.Logger
	Enable conctreelog.Topic
}

// Default returns a Logger backed by logrus.New() with every topic
// enabled.
func Default() *Logger {
	return &Logger{L: logrus.New(), Enable: conctreelog.AllTopics}
}

func (l *Logger) Enabled(topic conctreelog.Topic) bool {
	return l.Enable&topic != 0
}

func (l *Logger) Log(topic conctreelog.Topic, msg string, fields conctreelog.Fields) {
	if !l.Enabled(topic) {
		return
	}
	entry := l.L.WithFields(logrus.Fields(fields))
	if topic == conctreelog.TopicVerdict {
		entry.Info(msg)
		return
	}
	entry.Debug(msg)
}

var _ conctreelog.Log = (*Logger)(nil)
