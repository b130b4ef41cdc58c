package seeme

import (
	"context"
	"strings"

	"github.com/andrewboy/see-me/adapters/client/httpc"
	"github.com/andrewboy/see-me/adapters/logger"
	"github.com/andrewboy/see-me/adapters/sms"
	"github.com/andrewboy/see-me/seemeErrs"
	"github.com/andrewboy/see-me/seemeTools"
)

var _ sms.Gateway = (*St)(nil)

// St is safe for concurrent use: it only holds the validated config,
// all per-call state lives in the call.
type St struct {
	lg    logger.Lite
	httpc httpc.HttpC
	cfg   ConfigSt
}

func New(lg logger.Lite, httpc httpc.HttpC, cfg ConfigSt) (*St, error) {
	cfg = cfg.withDefaults()

	err := cfg.validate()
	if err != nil {
		return nil, err
	}

	cfg.ApiKey = strings.TrimSpace(cfg.ApiKey)
	cfg.BaseUrl = strings.TrimRight(cfg.BaseUrl, "/")

	return &St{
		lg:    lg,
		httpc: httpc,
		cfg:   cfg,
	}, nil
}

func (s *St) Send(phone string, msg string) bool {
	_, err := s.SendSms(context.Background(), &sms.SendReqSt{
		Number:  phone,
		Message: msg,
	})
	if err != nil {
		s.lg.Errorw("SeeMe: fail to send sms", err, "number", phone)
		return false
	}

	return true
}

// SendAsync validates the message and sends it in background.
func (s *St) SendAsync(phone string, msg string) bool {
	req := &sms.SendReqSt{
		Number:  phone,
		Message: msg,
	}

	_, err := s.buildSendParams(req)
	if err != nil {
		s.lg.Warnw("SeeMe: invalid sms", "number", phone, "error", err.Error())
		return false
	}

	go func() {
		defer seemeTools.PanicRecover(s.lg, "SeeMe: SendAsync")

		_, err := s.SendSms(context.Background(), req)
		if err != nil {
			s.lg.Errorw("SeeMe: fail to send sms", err, "number", phone)
		}
	}()

	return true
}

func (s *St) SendSms(ctx context.Context, req *sms.SendReqSt) (sms.ResultSt, error) {
	d := newDiag("SEND SMS")
	defer s.flushDiag(d)

	if req == nil {
		req = &sms.SendReqSt{}
	}

	d.add("INPUT PARAMS")
	d.add("number: %q", req.Number)
	d.add("message: %q", req.Message)
	d.add("sender: %s", strOrNull(req.Sender))
	d.add("reference: %s", strOrNull(req.Reference))
	d.add("callback_params: %s", strOrNull(req.Callback))
	d.add("callback_url: %s", strOrNull(req.CallbackUrl))

	pars, err := s.buildSendParams(req)
	if err != nil {
		d.addError(err)
		return nil, err
	}

	return s.fetchResult(ctx, d, pars)
}

func (s *St) GetBalance(ctx context.Context) (sms.ResultSt, error) {
	d := newDiag("GET BALANCE")
	defer s.flushDiag(d)

	pars := newParams(s.cfg.ApiKey)
	pars.setMethod("balance")

	return s.fetchResult(ctx, d, pars)
}

func (s *St) SetIp(ctx context.Context, ip string) (sms.ResultSt, error) {
	d := newDiag("SET IP")
	defer s.flushDiag(d)

	d.add("INPUT PARAMS")
	d.add("ip: %q", ip)

	pars := newParams(s.cfg.ApiKey)
	pars.setMethod("setip")

	err := pars.setIp(ip)
	if err != nil {
		d.addError(err)
		return nil, err
	}

	return s.fetchResult(ctx, d, pars)
}

func (s *St) buildSendParams(req *sms.SendReqSt) (*paramsSt, error) {
	pars := newParams(s.cfg.ApiKey)

	err := pars.setNumber(req.Number)
	if err != nil {
		return nil, err
	}

	err = pars.setMessage(req.Message)
	if err != nil {
		return nil, err
	}

	pars.setSender(req.Sender)
	pars.setReference(req.Reference)

	err = pars.setCallback(req.Callback)
	if err != nil {
		return nil, err
	}

	pars.setCallbackUrl(req.CallbackUrl)

	return pars, nil
}

func (s *St) fetchResult(ctx context.Context, d *diagSt, pars *paramsSt) (sms.ResultSt, error) {
	d.add("params: %s", pars.masked(s.cfg.Format).Encode())
	d.add("api_url: %s", httpc.OptionsSt{Uri: s.cfg.BaseUrl, Params: pars.masked(s.cfg.Format)}.FullUrl())

	resp, err := s.httpc.Send(ctx, httpc.OptionsSt{
		Uri:       s.cfg.BaseUrl,
		Params:    pars.values(s.cfg.Format),
		Timeout:   s.cfg.Timeout,
		LogPrefix: "SeeMe(" + s.cfg.Method + "): ",
	})
	if err != nil {
		if seemeErrs.KindOf(err) != seemeErrs.KindTransport {
			status := 0
			if resp != nil {
				status = resp.StatusCode
			}
			err = seemeErrs.NewTransport(status, err)
		}
		d.addError(err)
		return nil, err
	}

	d.add("raw_result: %q", string(resp.BodyRaw))

	result, err := parseResult(s.cfg.Format, resp.BodyRaw)
	if err != nil {
		d.addError(err)
		return nil, err
	}

	d.add("parsed_result: %v", map[string]any(result))

	return result, nil
}
