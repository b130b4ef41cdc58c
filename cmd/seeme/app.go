package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/andrewboy/see-me/adapters/logger"
	"github.com/andrewboy/see-me/adapters/sms"
	"github.com/andrewboy/see-me/seemeErrs"
	"github.com/andrewboy/see-me/seemeTools"
)

const (
	ErrUnknownCommand = seemeErrs.Err("unknown_command")
	ErrBadArgs        = seemeErrs.Err("bad_arguments")
	ErrSendFailed     = seemeErrs.Err("send_failed")
)

type appSt struct {
	lg      logger.Lite
	gw      sms.Gateway
	out     io.Writer
	workers int
}

func (a *appSt) run(ctx context.Context, args []string, sendFlags sendFlagsSt) error {
	if len(args) == 0 {
		return ErrBadArgs
	}

	switch args[0] {
	case "send":
		if len(args) < 2 {
			return fmt.Errorf("%w: send needs at least one number", ErrBadArgs)
		}
		return a.send(ctx, args[1:], sendFlags)
	case "balance":
		return a.balance(ctx)
	case "setip":
		if len(args) != 2 {
			return fmt.Errorf("%w: setip needs exactly one ip", ErrBadArgs)
		}
		return a.setIp(ctx, args[1])
	}

	return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
}

type sendResultSt struct {
	number string
	result sms.ResultSt
	err    error
}

// send delivers the same message to every number, numbers are sent in parallel by a worker pool.
func (a *appSt) send(ctx context.Context, numbers []string, sendFlags sendFlagsSt) error {
	results := make([]sendResultSt, len(numbers))

	wp := seemeTools.NewWorkerPool(ctx, a.workers, len(numbers))

	for i, number := range numbers {
		i, number := i, seemeTools.NormalizePhone(number)

		wp.Submit(func(ctx context.Context) error {
			defer seemeTools.PanicRecover(a.lg, "send to "+number)

			res, err := a.gw.SendSms(ctx, &sms.SendReqSt{
				Number:      number,
				Message:     sendFlags.message,
				Sender:      seemeTools.NewPtrOrNil(sendFlags.sender),
				Reference:   seemeTools.NewPtrOrNil(sendFlags.reference),
				Callback:    seemeTools.NewPtrOrNil(sendFlags.callback),
				CallbackUrl: seemeTools.NewPtrOrNil(sendFlags.callbackUrl),
			})

			results[i] = sendResultSt{number: number, result: res, err: err}

			return nil
		})
	}

	err := wp.FinishAndWait()
	if err != nil {
		return err
	}

	a.lg.Debugw("Send finished", "numbers", len(numbers), "duration", wp.GetDuration().String())

	failed := 0

	for _, r := range results {
		switch {
		case r.number == "":
			failed++
		case r.err != nil:
			failed++
			fmt.Fprintf(a.out, "%s\tERROR\t%s\n", r.number, r.err.Error())
		default:
			fmt.Fprintf(a.out, "%s\tOK\t%s\n", r.number, fmtResult(r.result))
		}
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrSendFailed, failed, len(numbers))
	}

	return nil
}

func (a *appSt) balance(ctx context.Context) error {
	res, err := a.gw.GetBalance(ctx)
	if err != nil {
		return err
	}

	balance, err := res.GetFloat("balance")
	if err != nil {
		fmt.Fprintln(a.out, fmtResult(res))
		return nil
	}

	fmt.Fprintf(a.out, "balance: %s %s\n", seemeTools.FmtFloat(balance, 2), res.GetString("currency"))

	return nil
}

func (a *appSt) setIp(ctx context.Context, ip string) error {
	res, err := a.gw.SetIp(ctx, ip)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\tOK\t%s\n", ip, fmtResult(res))

	return nil
}

// fmtResult prints the result fields sorted by key, "result" itself is skipped.
func fmtResult(res sms.ResultSt) string {
	keys := make([]string, 0, len(res))
	for k := range res {
		if k != "result" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+res.GetString(k))
	}

	return strings.Join(parts, " ")
}

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrBadArgs), errors.Is(err, ErrUnknownCommand):
		return 2
	case errors.Is(err, seemeErrs.ErrInvalidConfig), errors.Is(err, seemeErrs.ErrInvalidParameter):
		return 3
	case errors.Is(err, seemeErrs.ErrGateway):
		return 4
	}
	return 1
}
