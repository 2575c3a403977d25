package admin

import (
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/admin/model/dto"
	"hotel/internal/domains/admin/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Admin
	middleware middleware.AppMiddleware
	cfg        *config.Config
	otel       otel.Otel
}

func New(service service.Admin, middleware middleware.AppMiddleware, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		cfg:        cfg,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.With(handler.middleware.RateLimit).Post("/admin/login", handler.Login)
	router.Post("/admin/logout", handler.Logout)
	router.Get("/admin/me", handler.Me)
}

func (handler *Handler) cookie(value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     handler.cfg.Session.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   handler.cfg.Server.Env != constant.ServerEnvDevelopment && handler.cfg.Server.Env != constant.Empty,
	}

	if value == constant.Empty {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)

		return cookie
	}

	cookie.Expires = expires

	return cookie
}

func (handler *Handler) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(handler.cfg.Session.CookieName)
	if err != nil {
		return constant.Empty
	}

	return cookie.Value
}

// Login opens an admin session.
// @Summary Admin login
// @Description Verifies the admin password and sets the session cookie.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Admin password"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 429 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /admin/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	http.SetCookie(w, handler.cookie(res.Token, res.ExpiresAt))

	response.WithJSON(w, http.StatusOK, dto.SessionResponse{IsAdmin: true})
}

// Logout closes the admin session.
// @Summary Admin logout
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 500 {object} response.Message
// @Router /admin/logout [post]
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if err := handler.service.Logout(ctx, handler.sessionToken(r)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to logout")

		response.WithError(w, err)

		return
	}

	http.SetCookie(w, handler.cookie(constant.Empty, time.Time{}))

	response.WithJSON(w, http.StatusOK, dto.SessionResponse{IsAdmin: false})
}

// Me reports whether the caller holds an admin session.
// @Summary Current session
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 500 {object} response.Message
// @Router /admin/me [get]
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	session, err := handler.service.Authenticate(ctx, handler.sessionToken(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read admin session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}
