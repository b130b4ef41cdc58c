package seeme

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/andrewboy/see-me/adapters/logger/zap"
)

const diagSeparator = "--------------------------------------------------------------------"

// diagSt is the diagnostic log of a single call. It is written to the log file
// once the call finishes, successfully or not.
type diagSt struct {
	title string
	lines []string
}

func newDiag(title string) *diagSt {
	return &diagSt{
		title: title,
		lines: []string{diagSeparator, "SEE ME - " + title},
	}
}

func (d *diagSt) add(format string, args ...any) {
	d.lines = append(d.lines, fmt.Sprintf(format, args...))
}

func (d *diagSt) addError(err error) {
	d.add("Exception thrown (%T): %s", err, err.Error())
}

func (d *diagSt) String() string {
	return strings.Join(d.lines, "\n")
}

func strOrNull(v *string) string {
	if v == nil {
		return "null"
	}
	return strconv.Quote(*v)
}

// logFileMu serializes appends so blocks of concurrent calls never interleave.
var logFileMu sync.Mutex

// flushDiag appends the call log to the log file as one entry. Failing to do so never fails the call.
func (s *St) flushDiag(d *diagSt) {
	s.lg.Debugw("SeeMe call: "+d.title, "log", d.String())

	if s.cfg.LogFile == "" {
		return
	}

	logFileMu.Lock()
	defer logFileMu.Unlock()

	sink, err := zap.NewFile(s.cfg.LogFile)
	if err != nil {
		s.lg.Errorw("SeeMe: fail to open log file", err, "path", s.cfg.LogFile)
		return
	}
	defer sink.Close()

	sink.Infow(d.String())
}
