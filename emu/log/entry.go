package log

import (
	"fmt"
	"sync"

	"gopkg.in/Sirupsen/logrus.v0"
)

// EntryZ is a log entry under construction. Typed field methods append
// key/value pairs; End emits the entry. A nil *EntryZ (disabled module) is
// valid: every method is a no-op.
type EntryZ struct {
	mod Module
	lvl Level
	msg string

	fields [16]zfield
	nf     int
}

type zfield struct {
	key string
	val any
}

var entryPool = sync.Pool{
	New: func() any { return new(EntryZ) },
}

func newEntryZ() *EntryZ {
	e := entryPool.Get().(*EntryZ)
	e.nf = 0
	return e
}

func (e *EntryZ) append(key string, val any) *EntryZ {
	if e == nil {
		return nil
	}
	if e.nf < len(e.fields) {
		e.fields[e.nf] = zfield{key: key, val: val}
		e.nf++
	}
	return e
}

func (e *EntryZ) Bool(key string, v bool) *EntryZ     { return e.append(key, v) }
func (e *EntryZ) String(key string, v string) *EntryZ { return e.append(key, v) }
func (e *EntryZ) Int(key string, v int) *EntryZ       { return e.append(key, v) }
func (e *EntryZ) Int64(key string, v int64) *EntryZ   { return e.append(key, v) }
func (e *EntryZ) Uint8(key string, v uint8) *EntryZ   { return e.append(key, v) }
func (e *EntryZ) Uint16(key string, v uint16) *EntryZ { return e.append(key, v) }
func (e *EntryZ) Uint64(key string, v uint64) *EntryZ { return e.append(key, v) }
func (e *EntryZ) Error(key string, v error) *EntryZ   { return e.append(key, v) }

func (e *EntryZ) Hex8(key string, v uint8) *EntryZ {
	return e.append(key, fmt.Sprintf("$%02X", v))
}

func (e *EntryZ) Hex16(key string, v uint16) *EntryZ {
	return e.append(key, fmt.Sprintf("$%04X", v))
}

// End emits the entry and recycles it. The receiver must not be used after.
func (e *EntryZ) End() {
	if e == nil {
		return
	}

	fields := make(logrus.Fields, e.nf+1)
	fields["_mod"] = modNames[e.mod]
	for i := range e.fields[:e.nf] {
		fields[e.fields[i].key] = e.fields[i].val
	}

	entry := logrus.StandardLogger().WithFields(fields)
	switch e.lvl {
	case DebugLevel:
		entry.Debug(e.msg)
	case InfoLevel:
		entry.Info(e.msg)
	case WarnLevel:
		entry.Warn(e.msg)
	case ErrorLevel:
		entry.Error(e.msg)
	case FatalLevel:
		entry.Fatal(e.msg)
	case PanicLevel:
		entry.Panic(e.msg)
	}

	entryPool.Put(e)
}
