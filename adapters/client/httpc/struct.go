package httpc

import (
	"net/http"
	"net/url"
	"time"

	"github.com/andrewboy/see-me/adapters/logger"
)

// Options

type OptionsSt struct {
	Client        *http.Client
	Uri           string
	Params        url.Values
	Headers       http.Header
	LogFlags      int
	LogPrefix     string
	RetryCount    int
	RetryInterval time.Duration
	Timeout       time.Duration

	// RateLimit is requests per second shared by all calls of one client, 0 means unlimited.
	// Only the base options set with SetOptions are taken into account.
	RateLimit float64
	RateBurst int
}

func (o OptionsSt) GetMergedWith(val OptionsSt) OptionsSt {
	res := OptionsSt{
		Client:        o.Client,
		Uri:           o.Uri + val.Uri,
		Params:        url.Values{},
		Headers:       http.Header{},
		LogFlags:      o.LogFlags,
		LogPrefix:     o.LogPrefix + val.LogPrefix,
		RetryCount:    o.RetryCount,
		RetryInterval: o.RetryInterval,
		Timeout:       o.Timeout,
		RateLimit:     o.RateLimit,
		RateBurst:     o.RateBurst,
	}

	// Client
	if val.Client != nil {
		res.Client = val.Client
	}
	if res.Client == nil {
		res.Client = http.DefaultClient
	}

	// Params
	for k, v := range o.Params {
		res.Params[k] = v
	}
	for k, v := range val.Params {
		res.Params[k] = v
	}

	// Headers
	for k, v := range o.Headers {
		res.Headers[k] = v
	}
	for k, v := range val.Headers {
		res.Headers[k] = v
	}

	// LogFlags
	if val.LogFlags != 0 {
		if val.LogFlags < 0 {
			res.LogFlags = 0
		} else {
			res.LogFlags = val.LogFlags
		}
	}

	// RetryCount
	if val.RetryCount != 0 {
		if val.RetryCount < 0 {
			res.RetryCount = 0
		} else {
			res.RetryCount = val.RetryCount
		}
	}

	// RetryInterval
	if val.RetryInterval != 0 {
		if val.RetryInterval < 0 {
			res.RetryInterval = 0
		} else {
			res.RetryInterval = val.RetryInterval
		}
	}

	// Timeout
	if val.Timeout != 0 {
		if val.Timeout < 0 {
			res.Timeout = 0
		} else {
			res.Timeout = val.Timeout
		}
	}

	return res
}

func (o OptionsSt) HasLogFlag(v int) bool {
	return o.LogFlags&v > 0
}

// FullUrl returns Uri with the encoded query string, params are sorted by key.
func (o OptionsSt) FullUrl() string {
	if len(o.Params) == 0 {
		return o.Uri
	}
	return o.Uri + "?" + o.Params.Encode()
}

// Resp

type RespSt struct {
	Lg      logger.Lite
	ReqOpts OptionsSt

	StatusCode        int
	StatusCodeSuccess bool
	Headers           http.Header
	BodyRaw           []byte
}

func (o *RespSt) Reset() {
	o.StatusCode = 0
	o.StatusCodeSuccess = false
	o.Headers = nil
	o.BodyRaw = nil
}

func (o *RespSt) LogError(title string, err error, args ...any) {
	if o.ReqOpts.HasLogFlag(ErrorLogToInfo) {
		o.LogInfo(title, append(args, "error", err.Error())...)
	} else {
		o.Lg.Errorw(o.ReqOpts.LogPrefix+title, err, o.fillLogArgs(args...)...)
	}
}

func (o *RespSt) LogInfo(title string, args ...any) {
	o.Lg.Infow(o.ReqOpts.LogPrefix+title, o.fillLogArgs(args...)...)
}

func (o *RespSt) fillLogArgs(srcArgs ...any) []any {
	return append(
		srcArgs,
		"uri", o.ReqOpts.Uri,
		"params", o.ReqOpts.Params.Encode(),
		"status_code", o.StatusCode,
		"rep_body", string(o.BodyRaw),
	)
}
