package seemeTools

import (
	"os"
	"os/signal"
	"reflect"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/andrewboy/see-me/adapters/logger"
)

// NormalizePhone turns a Hungarian phone number into the international
// digits-only form the gateway expects: "+36 20 123-4567" and "06201234567" become "36201234567".
func NormalizePhone(p string) string {
	p = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '/', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(p))

	l := len(p)
	if l > 1 {
		if p[0] == '+' {
			p = p[1:]
		} else if strings.HasPrefix(p, "00") {
			p = p[2:]
		} else if l == 11 && strings.HasPrefix(p, "06") {
			p = "36" + p[2:]
		}
	}

	return p
}

func NewPtr[T any](v T) *T {
	return &v
}

// NewPtrOrNil returns nil for the zero value, handy for optional flags.
func NewPtrOrNil[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

func FmtFloat(v float64, dec int) string {
	p := message.NewPrinter(language.Hungarian)
	return p.Sprintf("%."+strconv.Itoa(dec)+"f", v)
}

func SliceHasValue[T comparable](sl []T, v T) bool {
	for _, x := range sl {
		if x == v {
			return true
		}
	}

	return false
}

func StopSignal() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	return ch
}

func SetViperDefaultsFromObj(obj any) {
	v := reflect.Indirect(reflect.ValueOf(obj))
	fields := reflect.VisibleFields(v.Type())

	var fieldTag string
	var tagName string

	for _, field := range fields {
		if field.Anonymous || !field.IsExported() {
			continue
		}

		fieldTag = field.Tag.Get("mapstructure")
		if fieldTag == "" {
			continue
		}

		tagName = strings.SplitN(fieldTag, ",", 2)[0]

		// keep defaults that are already registered
		if viper.IsSet(tagName) {
			continue
		}

		viper.SetDefault(tagName, v.FieldByIndex(field.Index).Interface())
	}
}

func PanicRecover(lg logger.WarnAndError, msg string) {
	if recoverRep := recover(); recoverRep != nil { // recovery error
		lg.Errorw("Panic (recovered): "+msg, nil, "recovery_error", recoverRep, "recovery_stacktrace", string(debug.Stack()))
	}
}
