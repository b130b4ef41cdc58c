package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/andrewboy/see-me/adapters/client/httpc"
	"github.com/andrewboy/see-me/adapters/client/httpc/httpclient"
	"github.com/andrewboy/see-me/adapters/logger"
	"github.com/andrewboy/see-me/adapters/logger/zap"
	"github.com/andrewboy/see-me/adapters/sms/seeme"
	"github.com/andrewboy/see-me/seemeTools"
)

const usage = `usage:
  seeme [flags] send <number>... -m <message>
  seeme [flags] balance
  seeme [flags] setip <ip>

flags:
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	sendFlags := sendFlagsSt{}

	fs := newFlagSet(&sendFlags)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}

	err := fs.Parse(args)
	if err != nil {
		return 2
	}

	conf, err := loadConf(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 2
	}

	var lg logger.Full = zap.New(conf.LogLevel, conf.Debug)
	defer lg.Sync()

	hc := httpclient.New(lg, httpc.OptionsSt{
		Client:    &http.Client{},
		LogFlags:  httpc.LogRequest,
		RateLimit: conf.RateLimit,
		RateBurst: 1,
	})

	gw, err := seeme.New(lg, hc, seeme.ConfigSt{
		ApiKey:  conf.ApiKey,
		Format:  conf.Format,
		Method:  conf.Method,
		LogFile: conf.LogFile,
		BaseUrl: conf.BaseUrl,
		Timeout: conf.Timeout,
	})
	if err != nil {
		lg.Errorw("Fail to create gateway client", err)
		return exitCode(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go waitStop(ctx, lg, cancel)

	app := &appSt{
		lg:      lg,
		gw:      gw,
		out:     os.Stdout,
		workers: conf.Workers,
	}

	err = app.run(ctx, fs.Args(), sendFlags)
	if err != nil {
		if exitCode(err) == 2 {
			fs.Usage()
		}
		lg.Errorw("Command failed", err)
		return exitCode(err)
	}

	return 0
}

// waitStop cancels in-flight requests on the first signal and exits on the second.
func waitStop(ctx context.Context, lg logger.Full, cancel context.CancelFunc) {
	stop := seemeTools.StopSignal()

	select {
	case <-stop:
		lg.Warnw("Interrupted, cancelling requests")
		cancel()
	case <-ctx.Done():
		return
	}

	<-stop
	lg.Fatalw("Interrupted twice, exiting", nil)
}
