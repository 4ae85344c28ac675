package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout ограничивает админские запросы дедлайном d.
// d <= 0 отключает мидлвар; уже установленный дедлайн не переопределяется.
//
// Роуты генерации регистрируются вне этой группы: их ограничивает таймаут шлюза,
// а начатый пакет завершается на отвязанном контексте.
func Timeout(d time.Duration) Middleware {
	if d <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if _, has := ctx.Deadline(); !has {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, d)
				defer cancel()
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
