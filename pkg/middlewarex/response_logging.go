package middlewarex

import (
	"cmp"
	"log/slog"
	"net/http"
	"time"

	"github.com/zenazn/goji/web/mutil"

	"gamedeals/pkg/logx"
)

// ResponseLogging logs status, size and latency of every response. Bodies
// are not dumped: a deals page is tens of kilobytes of JSON.
//
// The trouble with optional interfaces:
// https://blog.merovius.de/posts/2017-07-30-the-trouble-with-optional-interfaces/
func ResponseLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		start := time.Now()
		lw := mutil.WrapWriter(w)

		next.ServeHTTP(lw, r)

		// lw.Status() is 0 when the handler never called WriteHeader.
		status := cmp.Or(lw.Status(), http.StatusOK)

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		logger(ctx).Log(
			ctx,
			level,
			logx.FieldHTTPResponse,
			slog.Int(logx.FieldResponseStatus, status),
			slog.Int(logx.FieldResponseBytes, lw.BytesWritten()),
			slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
		)
	})
}
