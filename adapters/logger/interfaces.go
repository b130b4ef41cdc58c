package logger

type WarnAndError interface {
	Warnw(msg string, args ...any)
	Errorw(msg string, err error, args ...any)
}

type Lite interface {
	WarnAndError
	Infow(msg string, args ...any)
	Debugw(msg string, args ...any)
}

type Full interface {
	Lite
	Fatalw(msg string, err error, args ...any)
	Sync()
}
