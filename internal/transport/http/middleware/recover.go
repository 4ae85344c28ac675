package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	apierrors "github.com/novina/Novina/internal/errors"
	logctx "github.com/novina/Novina/internal/pkg/log"
)

// Recover превращает панику обработчика в 500 с кодом internal.
//
// Особенности:
//   - http.ErrAbortHandler пробрасывается дальше: это штатный способ оборвать ответ;
//   - если заголовок уже ушёл клиенту, тело ошибки не пишется, только лог;
//   - стек и значение паники остаются в логе и наружу не отдаются.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := wrapWriter(w)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "panic",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", r.Header.Get("X-Request-Id")),
					slog.String("reason", fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())),
				)

				if sw.headerSent() {
					return
				}
				apierrors.WriteError(sw, r, errors.New("handler panic"))
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
