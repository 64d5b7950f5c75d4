package assert

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// stackFrameOffset indicates how many frames to go up in the
// call stack to find the filename/line info. As this work is
// always done in newLocationInfo(), the offset is specified
// from the perspective of newLocationInfo
type stackFrameOffset int

// Order is important here since iota is being used
const (
	offsetNewLocationInfo stackFrameOffset = iota
	offsetHere
	offsetAPICaller
	offsetAPICallersCaller
)

// locationInfo is the call site of a failed assertion
type locationInfo struct {
	Funcname string
	Filename string
	Line     int
}

func newLocationInfo(nframes stackFrameOffset) *locationInfo {
	funcname := "*function*"
	pc, filename, line, ok := runtime.Caller(int(nframes))
	if !ok {
		filename = "*filename*"
		line = 0
	} else if thisFunc := runtime.FuncForPC(pc); thisFunc != nil {
		funcname = thisFunc.Name()
		if i := strings.LastIndex(funcname, "/"); i >= 0 {
			funcname = funcname[i+1:]
		}
	}
	return &locationInfo{Funcname: funcname, Filename: filename, Line: line}
}

func (l *locationInfo) String() string {
	return fmt.Sprintf("%s:%d (%s)", filepath.Base(l.Filename), l.Line, l.Funcname)
}
