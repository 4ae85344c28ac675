package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/novina/Novina/internal/config"
	apierrors "github.com/novina/Novina/internal/errors"
	logctx "github.com/novina/Novina/internal/pkg/log"
	"github.com/novina/Novina/internal/pkg/redact"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid token")
	errTokenExpired = errors.New("token expired")
)

// AccessClaims: claims access-токена, выпущенного сервисом авторизации.
type AccessClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type userIDKey struct{}

// UserID возвращает id редактора, прошедшего Authenticate.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok
}

// bearer достаёт токен из "Authorization: Bearer <token>".
func bearer(r *http.Request) string {
	const prefix = "Bearer "

	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}

// Authenticate пропускает только запросы с валидным HS256 access-токеном
// и кладёт uid из токена в контекст.
//
// Без jwt_secret все запросы получают 401: админские роуты не открываются по умолчанию.
func Authenticate(cfg config.AuthConfig) Middleware {
	secret := []byte(cfg.JWTSecret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, err := verifyAccessToken(bearer(r), secret, cfg.Issuer, cfg.Audience)
			if err != nil {
				logctx.From(r.Context()).Warn("auth_rejected",
					slog.String("path", r.URL.Path),
					slog.String("token", redact.Bearer(r.Header.Get("Authorization"))),
					slog.String("err", err.Error()),
				)
				apierrors.WriteError(w, r, fmt.Errorf("%w: %w", apierrors.ErrUnauthenticated, err))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, uid)
			ctx = logctx.With(ctx, slog.String("user_id", uid.String()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// verifyAccessToken валидирует access-токен и возвращает uid.
func verifyAccessToken(tokenStr string, secret []byte, issuer, audience string) (uuid.UUID, error) {
	const op = "middleware.auth.verifyAccessToken"

	if tokenStr == "" {
		return uuid.Nil, fmt.Errorf("%s: %w", op, errMissingToken)
	}
	if len(secret) == 0 {
		return uuid.Nil, fmt.Errorf("%s: %w: jwt secret is not configured", op, errInvalidToken)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5 * time.Second),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	token, err := jwt.ParseWithClaims(tokenStr, &AccessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, errInvalidToken)
			}

			return secret, nil
		},
		opts...,
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, errTokenExpired)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, errInvalidToken)
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("%s: %w", op, errInvalidToken)
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, errInvalidToken)
	}

	return uid, nil
}

// CronAuth проверяет "Authorization: Bearer <CRON_SECRET>".
// Пустой секрет отключает проверку.
func CronAuth(secret string) Middleware {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}

		want := []byte(secret)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(bearer(r))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				logctx.From(r.Context()).Warn("cron_auth_rejected",
					slog.String("path", r.URL.Path),
				)
				apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
