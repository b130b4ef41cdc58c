package sms

import (
	"github.com/spf13/cast"

	"github.com/andrewboy/see-me/seemeErrs"
)

const (
	ResultOk  = "ok"
	ResultErr = "err"

	// CallbackAll subscribes to every delivery status code.
	CallbackAll = "all"
)

type SendReqSt struct {
	Number      string
	Message     string
	Sender      *string
	Reference   *string
	Callback    *string
	CallbackUrl *string
}

// ResultSt is the decoded gateway response of a successful call.
type ResultSt map[string]any

func (r ResultSt) Result() string {
	return r.GetString("result")
}

func (r ResultSt) GetString(key string) string {
	return cast.ToString(r[key])
}

func (r ResultSt) GetFloat(key string) (float64, error) {
	v, ok := r[key]
	if !ok {
		return 0, seemeErrs.FieldNotFound
	}

	return cast.ToFloat64E(v)
}
