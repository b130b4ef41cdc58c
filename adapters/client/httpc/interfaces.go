package httpc

import (
	"context"
)

type HttpC interface {
	GetOptions() OptionsSt
	SetOptions(opts OptionsSt)
	Send(ctx context.Context, opts OptionsSt) (*RespSt, error)
}
