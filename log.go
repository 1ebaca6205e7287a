package trickle

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var logger atomic.Pointer[logrus.FieldLogger]

// SetLogger sets the logger used for diagnostics, such as intercepted panics.
// Passing nil restores the logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		logger.Store(nil)
		return
	}
	logger.Store(&l)
}

// Logger returns the logger set by [SetLogger].
func Logger() logrus.FieldLogger {
	if l := logger.Load(); l != nil {
		return *l
	}
	return logrus.StandardLogger()
}

func taskLogger(t *Task) logrus.FieldLogger {
	return Logger().WithField("task", t.ID())
}
