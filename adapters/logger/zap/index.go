package zap

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/andrewboy/see-me/adapters/logger"
)

var _ logger.Full = (*St)(nil)

const fileTimeLayout = "2006-01-02 15:04:05"

type St struct {
	l       *zap.SugaredLogger
	closeFn func()
}

func New(level string, dev bool) *St {
	var cfg zap.Config

	if dev {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	return &St{l: l.Sugar()}
}

// NewFile opens path in append mode and writes one "<timestamp> - <msg>" line per entry.
// Close must be called to release the file.
func NewFile(path string) (*St, error) {
	ws, closeFn, err := zap.Open(path)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "ts",
			MessageKey:       "msg",
			LineEnding:       zapcore.DefaultLineEnding,
			EncodeTime:       zapcore.TimeEncoderOfLayout(fileTimeLayout),
			EncodeDuration:   zapcore.StringDurationEncoder,
			ConsoleSeparator: " - ",
		}),
		ws,
		zapcore.DebugLevel,
	)

	return &St{l: zap.New(core).Sugar(), closeFn: closeFn}, nil
}

func parseLevel(v string) zapcore.Level {
	switch strings.ToLower(v) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (o *St) Errorw(msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	o.l.Errorw(msg, args...)
}

func (o *St) Warnw(msg string, args ...any) {
	o.l.Warnw(msg, args...)
}

func (o *St) Infow(msg string, args ...any) {
	o.l.Infow(msg, args...)
}

func (o *St) Debugw(msg string, args ...any) {
	o.l.Debugw(msg, args...)
}

func (o *St) Fatalw(msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	o.l.Fatalw(msg, args...)
}

func (o *St) Sync() {
	_ = o.l.Sync()
}

func (o *St) Close() {
	o.Sync()

	if o.closeFn != nil {
		o.closeFn()
		o.closeFn = nil
	}
}
