package core

import (
	"path/filepath"
	"runtime"
	"time"
)

// Statement is one log call on its way from a producer to the consumer.
// It is created by the logger for every accepted call and consumed exactly
// once by the background worker; nobody mutates it after it has been sent.
type Statement struct {
	Time    time.Time
	Level   Level
	Message string
	Fields  []Field
	Caller  CallerInfo
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// NewStatement builds a Statement. Logger fields come first, call fields
// after them; both are copied so the producer may reuse its slices.
func NewStatement(t time.Time, level Level, msg string, loggerFields, callFields []Field) Statement {
	s := Statement{
		Time:    t,
		Level:   level,
		Message: msg,
	}
	if n := len(loggerFields) + len(callFields); n > 0 {
		s.Fields = make([]Field, 0, n)
		s.Fields = append(s.Fields, loggerFields...)
		s.Fields = append(s.Fields, callFields...)
	}
	return s
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
