package seeme

import (
	"net/url"
	"strings"

	"github.com/andrewboy/see-me/adapters/sms"
	"github.com/andrewboy/see-me/seemeErrs"
)

// paramsSt collects the query parameters of one gateway call.
type paramsSt struct {
	v url.Values
}

func newParams(apiKey string) *paramsSt {
	return &paramsSt{
		v: url.Values{"key": {apiKey}},
	}
}

func (p *paramsSt) setNumber(number string) error {
	number = strings.TrimSpace(number)

	if !numberRegexp.MatchString(number) {
		return seemeErrs.NewInvalidParameter("Only numbers are allowed: number", CodeInvalidNumber)
	}

	p.v.Set("number", number)

	return nil
}

func (p *paramsSt) setMessage(message string) error {
	message = strings.TrimSpace(message)

	if message == "" {
		return seemeErrs.NewInvalidParameter("Invalid message parameter. Must be a not empty string", CodeInvalidType)
	}

	p.v.Set("message", message)

	return nil
}

func (p *paramsSt) setSender(sender *string) {
	if sender != nil {
		p.v.Set("sender", strings.TrimSpace(*sender))
	}
}

// setReference keeps the reference only when it is numeric, anything else is dropped without error.
func (p *paramsSt) setReference(reference *string) {
	if reference != nil && numericRegexp.MatchString(*reference) {
		p.v.Set("reference", strings.TrimSpace(*reference))
	}
}

func (p *paramsSt) setCallback(callback *string) error {
	if callback == nil {
		return nil
	}

	if *callback == sms.CallbackAll {
		p.v.Set("callback", callbackAllCodes)
		return nil
	}

	if !callbackRegexp.MatchString(*callback) {
		return seemeErrs.NewInvalidParameter("Incorrect callback parameter format", CodeInvalidType)
	}

	p.v.Set("callback", *callback)

	return nil
}

func (p *paramsSt) setCallbackUrl(callbackUrl *string) {
	if callbackUrl != nil {
		p.v.Set("callbackurl", *callbackUrl)
	}
}

func (p *paramsSt) setIp(ip string) error {
	if !ipv4Regexp.MatchString(ip) {
		return seemeErrs.NewInvalidParameter("Parameter is invalid: ip", CodeInvalidIp)
	}

	p.v.Set("ip", strings.TrimSpace(ip))

	return nil
}

func (p *paramsSt) setMethod(method string) {
	p.v.Set("method", method)
}

// values returns the final query with the response format and the protocol version appended.
func (p *paramsSt) values(format string) url.Values {
	res := make(url.Values, len(p.v)+2)

	for k, v := range p.v {
		res[k] = v
	}

	res.Set("format", format)
	res.Set("apiVersion", ApiVersion)

	return res
}

// masked returns a copy of the params safe to write into logs.
func (p *paramsSt) masked(format string) url.Values {
	res := p.values(format)

	if key := res.Get("key"); len(key) > apiKeyChecksumLen {
		res.Set("key", key[:apiKeyChecksumLen]+strings.Repeat("*", len(key)-apiKeyChecksumLen))
	}

	return res
}
