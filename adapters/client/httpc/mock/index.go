package mock

import (
	"context"
	"sync"

	"github.com/andrewboy/see-me/adapters/client/httpc"
	"github.com/andrewboy/see-me/adapters/logger"
	"github.com/andrewboy/see-me/seemeErrs"
)

const (
	ErrPageNotFound = seemeErrs.Err("page_not_found")
)

type St struct {
	lg logger.Lite

	opts      httpc.OptionsSt
	requests  []httpc.OptionsSt
	responses map[string]ResponseSt
	mu        sync.Mutex
}

type ResponseSt struct {
	Body       string
	StatusCode int
	Err        error
}

func New(lg logger.Lite) *St {
	return &St{
		lg: lg,

		requests:  []httpc.OptionsSt{},
		responses: map[string]ResponseSt{},
	}
}

func (c *St) SetResponses(responses map[string]ResponseSt) {
	c.mu.Lock()
	c.responses = map[string]ResponseSt{}
	c.mu.Unlock()

	for k, v := range responses {
		c.SetResponse(k, v)
	}
}

// SetResponse registers a canned response for the full request uri (base uri + request uri).
func (c *St) SetResponse(uri string, response ResponseSt) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if response.StatusCode == 0 {
		response.StatusCode = 200
	}

	c.responses[uri] = response
}

func (c *St) SetOptions(opts httpc.OptionsSt) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.opts = opts
}

func (c *St) GetOptions() httpc.OptionsSt {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.opts
}

func (c *St) Send(ctx context.Context, opts httpc.OptionsSt) (*httpc.RespSt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	opts = c.opts.GetMergedWith(opts)

	c.requests = append(c.requests, opts)

	resp := &httpc.RespSt{Lg: c.lg, ReqOpts: opts}

	if err := ctx.Err(); err != nil {
		return resp, seemeErrs.NewTransport(0, err)
	}

	response, ok := c.responses[opts.Uri]
	if !ok {
		c.lg.Infow("Httpc-mock, path not found", "path", opts.Uri)
		return resp, seemeErrs.NewTransport(0, ErrPageNotFound)
	}

	if response.Err != nil {
		return resp, seemeErrs.NewTransport(0, response.Err)
	}

	resp.StatusCode = response.StatusCode
	resp.StatusCodeSuccess = response.StatusCode >= 200 && response.StatusCode <= 299
	resp.BodyRaw = []byte(response.Body)

	if !resp.StatusCodeSuccess {
		return resp, seemeErrs.NewTransport(resp.StatusCode, seemeErrs.BadStatusCode)
	}

	if len(resp.BodyRaw) == 0 {
		return resp, seemeErrs.NewTransport(resp.StatusCode, seemeErrs.EmptyBody)
	}

	return resp, nil
}

func (c *St) GetRequests() []httpc.OptionsSt {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]httpc.OptionsSt, len(c.requests))
	copy(result, c.requests)

	return result
}

func (c *St) GetRequest(uri string) (httpc.OptionsSt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, req := range c.requests {
		if req.Uri == uri {
			return req, true
		}
	}

	return httpc.OptionsSt{}, false
}

func (c *St) Clean() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = []httpc.OptionsSt{}
	c.responses = map[string]ResponseSt{}
}
