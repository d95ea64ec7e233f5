package sjs_test

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/delaneyj/tickparty/sjs"
)

func newRuntime(opts ...sjs.Option) *sjs.Runtime {
	opts = append([]sjs.Option{sjs.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return sjs.New(opts...)
}

func newLoggedRuntime() (*sjs.Runtime, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	rs := sjs.New(sjs.WithLogger(slog.New(slog.NewTextHandler(buf, nil))))
	return rs, buf
}

type none = struct{}
