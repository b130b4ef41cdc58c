package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/andrewboy/see-me/adapters/client/httpc"
	"github.com/andrewboy/see-me/adapters/logger"
	"github.com/andrewboy/see-me/seemeErrs"
)

type St struct {
	lg      logger.Lite
	opts    httpc.OptionsSt
	limiter *rate.Limiter
}

func New(lg logger.Lite, opts httpc.OptionsSt) *St {
	res := &St{
		lg: lg,
	}

	res.SetOptions(opts)

	return res
}

func (c *St) GetOptions() httpc.OptionsSt {
	return c.opts
}

func (c *St) SetOptions(opts httpc.OptionsSt) {
	c.opts = opts

	c.limiter = nil
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
}

// Send issues a GET request. Any failure, including a non-2xx status or an empty body,
// is returned as a *seemeErrs.Error of kind KindTransport.
func (c *St) Send(ctx context.Context, opts httpc.OptionsSt) (*httpc.RespSt, error) {
	var err error

	opts = c.opts.GetMergedWith(opts)

	resp := &httpc.RespSt{ReqOpts: opts, Lg: c.lg}

	if opts.HasLogFlag(httpc.LogRequest) {
		resp.LogInfo("Request: " + opts.Uri)
	}

	for i := opts.RetryCount; i >= 0; i-- {
		resp.Reset()
		err = c.send(ctx, opts, resp)
		if err == nil {
			if resp.StatusCode < 500 { // not retry for "< 500" errors
				break
			}
		}
		if ctx.Err() != nil {
			break
		}
		if opts.RetryInterval > 0 && i > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(opts.RetryInterval):
			}
		}
	}

	if err != nil {
		if !opts.HasLogFlag(httpc.NoLogError) {
			resp.LogError("Fail to send http-request", err)
		}
		return resp, seemeErrs.NewTransport(resp.StatusCode, err)
	}

	err = c.handleRespBadStatusCode(resp)
	if err != nil {
		return resp, err
	}

	if len(resp.BodyRaw) == 0 {
		if !opts.HasLogFlag(httpc.NoLogError) {
			resp.LogError("Empty response body", seemeErrs.EmptyBody)
		}
		return resp, seemeErrs.NewTransport(resp.StatusCode, seemeErrs.EmptyBody)
	}

	if opts.HasLogFlag(httpc.LogResponse) {
		resp.LogInfo("Response: " + opts.Uri)
	}

	return resp, nil
}

func (c *St) send(ctx context.Context, opts httpc.OptionsSt, resp *httpc.RespSt) error {
	var err error

	if c.limiter != nil {
		err = c.limiter.Wait(ctx)
		if err != nil {
			return err
		}
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.Uri, nil)
	if err != nil {
		return err
	}

	// headers
	req.Header = opts.Headers

	// params
	req.URL.RawQuery = opts.Params.Encode()

	// Do request
	rep, err := opts.Client.Do(req)
	if err != nil {
		return err
	}
	defer rep.Body.Close()

	// read response body
	resp.BodyRaw, err = io.ReadAll(rep.Body)
	if err != nil {
		return err
	}

	resp.StatusCode = rep.StatusCode
	resp.StatusCodeSuccess = rep.StatusCode >= 200 && rep.StatusCode <= 299
	resp.Headers = rep.Header

	return nil
}

func (c *St) handleRespBadStatusCode(resp *httpc.RespSt) error {
	if resp.StatusCode > 0 && !resp.StatusCodeSuccess {
		if !resp.ReqOpts.HasLogFlag(httpc.NoLogError) && !resp.ReqOpts.HasLogFlag(httpc.NoLogBadStatus) {
			resp.LogError("Bad status code", seemeErrs.BadStatusCode)
		}
		return seemeErrs.NewTransport(resp.StatusCode, seemeErrs.BadStatusCode)
	}

	return nil
}
