package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/placebetween/internal/error_values"
	"github.com/limbo/placebetween/internal/service"
	"github.com/limbo/placebetween/pkg/httputil"
)

type contextKey string

var (
	requestIDContextKey = contextKey("Request-ID")
	loggerContextKey    = contextKey("Logger")
	scopeContextKey     = contextKey("User-Scope")
	tokenContextKey     = contextKey("Bearer-Token")
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", reqID)
		ctx := context.WithValue(r.Context(), requestIDContextKey, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger
		reqID, ok := r.Context().Value(requestIDContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthMiddleware resolves the user scope. Requests without a bearer token are
// anonymous. A present but invalid token is rejected.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		scope := service.AnonScope
		tokenString := ""
		if r.Header.Get("Authorization") != "" {
			var err error
			tokenString, err = GetTokenFromHeader(r)
			if err != nil {
				logger.Error("auth failed: malformed authorization header")
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
				return
			}
			claims, err := s.jwtService.ParseToken(tokenString)
			if err != nil {
				logger.Error("auth failed: error parsing token", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
				return
			}
			if claims.Subject == "" {
				logger.Error("auth failed: token without subject")
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid token payload", nil)
				return
			}
			scope = service.UserScope(claims.Subject)
		}
		ctx := context.WithValue(r.Context(), scopeContextKey, scope)
		ctx = context.WithValue(ctx, tokenContextKey, tokenString)
		ctx = context.WithValue(ctx, loggerContextKey, logger.With(slog.String("scope", scope)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

// GetScopeFromCtx returns the user scope set by AuthMiddleware, anon otherwise.
func GetScopeFromCtx(ctx context.Context) string {
	scope, ok := ctx.Value(scopeContextKey).(string)
	if !ok || scope == "" {
		return service.AnonScope
	}
	return scope
}

func GetBearerFromCtx(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}
