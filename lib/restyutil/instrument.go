// Package restyutil captures raw HTTP exchanges off a resty client for
// debugging scraped endpoints.
package restyutil

import (
	"context"
	"log/slog"
	"strconv"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

// InstrumentOutput receives one formatted request/response exchange per
// completed call.
type InstrumentOutput interface {
	Write(id string, contents string)
}

type instrumentCtx struct {
	output    InstrumentOutput
	idcounter *uint64
}

type messageIDKey struct{}

// InstrumentClient dumps every exchange of client to output while slog
// debug logging is enabled. A nil output makes this a no-op.
func InstrumentClient(client *resty.Client, output InstrumentOutput) {
	if output == nil {
		return
	}

	var idcounter uint64
	i := instrumentCtx{output: output, idcounter: &idcounter}
	client.OnBeforeRequest(i.onBeforeRequest)
	client.OnAfterResponse(i.onAfterResponse)
	client.OnError(i.onError)
}

func (i instrumentCtx) onBeforeRequest(cli *resty.Client, req *resty.Request) error {
	ctx := req.Context()
	if !slog.Default().Enabled(ctx, slog.LevelDebug) {
		return nil
	}

	messageID := strconv.FormatUint(atomic.AddUint64(i.idcounter, 1), 10)
	slog.DebugContext(
		ctx, "start request",
		"method", req.Method,
		"url", req.URL,
		"message_id", messageID,
	)
	req.SetContext(context.WithValue(ctx, messageIDKey{}, messageID))
	return nil
}

func (i instrumentCtx) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	ctx := res.Request.Context()
	messageID, ok := ctx.Value(messageIDKey{}).(string)
	if !ok {
		return nil
	}

	i.output.Write(messageID, formatHTTPMessage(res))
	slog.DebugContext(
		ctx, "request finished",
		"method", res.Request.Method,
		"url", res.Request.URL,
		"status", res.StatusCode(),
		"message_id", messageID,
	)
	return nil
}

func (i instrumentCtx) onError(req *resty.Request, err error) {
	ctx := req.Context()
	messageID, _ := ctx.Value(messageIDKey{}).(string)
	slog.ErrorContext(
		ctx, "request failed",
		"method", req.Method,
		"url", req.URL,
		"err", err,
		"message_id", messageID,
	)
}
