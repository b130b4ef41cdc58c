package mock

import (
	"context"
	"sync"

	"github.com/andrewboy/see-me/adapters/logger"
	"github.com/andrewboy/see-me/adapters/sms"
)

type St struct {
	lg      logger.Lite
	testing bool

	// Result is returned by every call, Err overrides it when set.
	Result sms.ResultSt
	Err    error

	q  []Req
	mu sync.Mutex
}

type Req struct {
	Method string
	Send   *sms.SendReqSt
	Ip     string
}

func New(lg logger.Lite, testing bool) *St {
	return &St{
		lg:      lg,
		testing: testing,
		Result:  sms.ResultSt{"result": sms.ResultOk},
		q:       make([]Req, 0),
	}
}

func (m *St) Send(phone string, msg string) bool {
	_, err := m.SendSms(context.Background(), &sms.SendReqSt{Number: phone, Message: msg})
	return err == nil
}

func (m *St) SendAsync(phone string, msg string) bool {
	return m.Send(phone, msg)
}

func (m *St) SendSms(ctx context.Context, req *sms.SendReqSt) (sms.ResultSt, error) {
	return m.push(Req{Method: "send", Send: req})
}

func (m *St) GetBalance(ctx context.Context) (sms.ResultSt, error) {
	return m.push(Req{Method: "balance"})
}

func (m *St) SetIp(ctx context.Context, ip string) (sms.ResultSt, error) {
	return m.push(Req{Method: "setip", Ip: ip})
}

func (m *St) push(req Req) (sms.ResultSt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.testing {
		m.lg.Infow("SMS: "+req.Method, "req", req)
		return m.Result, m.Err
	}

	if len(m.q) > 100 {
		m.q = make([]Req, 0)
	}

	m.q = append(m.q, req)

	if m.Err != nil {
		return nil, m.Err
	}

	return m.Result, nil
}

func (m *St) PullAll() []Req {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := m.q

	m.q = make([]Req, 0)

	return q
}

func (m *St) Clean() {
	_ = m.PullAll()
}
