package log

import (
	"gopkg.in/Sirupsen/logrus.v0"
)

// Level mirrors the logrus level ordering: lower is more severe.
type Level uint32

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
)

func (lvl Level) logrus() logrus.Level {
	return logrus.Level(lvl)
}

// SetOutputLevel sets the global minimum level under which entries are
// dropped by the backend, regardless of module masks.
func SetOutputLevel(lvl Level) {
	logrus.SetLevel(lvl.logrus())
}
