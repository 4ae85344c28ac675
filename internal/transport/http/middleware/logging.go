package middleware

import (
	"log/slog"
	"net/http"
	"time"

	logctx "github.com/novina/Novina/internal/pkg/log"
)

// Logging кладёт в контекст логгер запроса и по завершении пишет одну запись "http".
// 5xx пишется на уровне warn: генерация упирается во внешний шлюз, и такие ответы
// нужно видеть без debug.
func Logging(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLog := l
			if rid := r.Header.Get(requestIDHeader); rid != "" {
				reqLog = reqLog.With(slog.String("request_id", rid))
			}
			ctx := logctx.Into(r.Context(), reqLog)

			sw := wrapWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r.WithContext(ctx))

			status := sw.code()
			lvl := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				lvl = slog.LevelWarn
			}

			reqLog.LogAttrs(ctx, lvl, "http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Duration("dur", time.Since(start)),
				slog.Int("bytes", sw.bytes),
			)
		})
	}
}
