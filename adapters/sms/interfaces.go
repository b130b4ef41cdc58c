package sms

import (
	"context"
)

type Sms interface {
	Send(phone string, msg string) bool
	SendAsync(phone string, msg string) bool
}

// Gateway is the full gateway API: sending with all options, balance query and IP allow-listing.
type Gateway interface {
	Sms
	SendSms(ctx context.Context, req *SendReqSt) (ResultSt, error)
	GetBalance(ctx context.Context) (ResultSt, error)
	SetIp(ctx context.Context, ip string) (ResultSt, error)
}
