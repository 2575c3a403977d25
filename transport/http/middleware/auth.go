package middleware

import (
	"context"
	"hotel/config"
	"hotel/infras/otel"
	adminService "hotel/internal/domains/admin/service"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth guards the routes that permissions.json reserves for the admin.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	admin      adminService.Admin
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthMiddleware(admin adminService.Admin, otel otel.Otel, permission *permissions.PermissionData, cfg *config.Config) Auth {
	return &authImpl{
		admin:      admin,
		otel:       otel,
		permission: permission,
		cfg:        cfg,
	}
}

// IsAdmin reports whether the request passed the admin check.
func IsAdmin(ctx context.Context) bool {
	isAdmin, _ := ctx.Value(constant.ContextKeyIsAdmin).(bool)

	return isAdmin
}

func (m *authImpl) requiredRoles(request *http.Request) []string {
	path := request.URL.Path

	if rctx := chi.RouteContext(request.Context()); rctx != nil && rctx.Routes != nil {
		if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != "" {
			path = pattern
		}
	}

	return m.permission.Roles(path, request.Method)
}

func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		roles := m.requiredRoles(request)
		if len(roles) == 0 {
			next.ServeHTTP(writer, request)

			return
		}

		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		var token string
		if cookie, err := request.Cookie(m.cfg.Session.CookieName); err == nil {
			token = cookie.Value
		}

		session, err := m.admin.Authenticate(ctx, token)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to authenticate admin session")
			response.WithError(writer, err)

			return
		}

		if !session.IsAdmin || !slices.Contains(roles, constant.ContextAdmin) {
			scope.TraceError(failure.ErrAdminRequired)
			response.WithError(writer, failure.ErrAdminRequired)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyIsAdmin, true)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
