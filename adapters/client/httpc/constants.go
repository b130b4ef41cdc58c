package httpc

const (
	LogRequest     = 1
	LogResponse    = 2
	NoLogError     = 4
	ErrorLogToInfo = 8
	NoLogBadStatus = 16
)
