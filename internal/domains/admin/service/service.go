package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/internal/domains/admin/model"
	"hotel/internal/domains/admin/model/dto"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/password"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Admin interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResult, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a cookie value to its session. Unknown or expired tokens are not admins.
	Authenticate(ctx context.Context, token string) (dto.SessionResponse, error)
}

type serviceImpl struct {
	cfg          *config.Config
	cache        cache.RedisCache
	jwtService   jwt.JWT
	otel         otel.Otel
	passwordHash string
}

func New(cfg *config.Config, cache cache.RedisCache, jwt jwt.JWT, otel otel.Otel) Admin {
	hash := cfg.Admin.PasswordHash

	if hash != constant.Empty && !password.IsHash(hash) {
		log.Error().Msg("ADMIN_PASSWORD_HASH is not a bcrypt hash")

		hash = constant.Empty
	}

	if hash == constant.Empty && cfg.Admin.Password != constant.Empty {
		log.Warn().Msg("ADMIN_PASSWORD is set in plain text, prefer ADMIN_PASSWORD_HASH")

		hashed, err := password.Hash(cfg.Admin.Password)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash admin password")
		}

		hash = hashed
	}

	if hash == constant.Empty {
		log.Warn().Msg("no admin password configured, admin login is disabled")
	}

	return &serviceImpl{
		cfg:          cfg,
		cache:        cache,
		jwtService:   jwt,
		otel:         otel,
		passwordHash: hash,
	}
}

func (s *serviceImpl) sessionKey(id string) string {
	return shared.BuildCacheKey(constant.CacheKeySession, id)
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = password.Verify(req.Password, s.passwordHash); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Msg("failed to verify admin password")
		}

		log.Warn().Msg("admin login attempt with wrong password")

		return res, failure.ErrInvalidCredentials
	}

	sessionID := uuid.NewString()

	token, expiresAt, err := s.jwtService.GenerateSessionToken(sessionID)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign session token")

		return res, fmt.Errorf("failed to sign session token: %w", err)
	}

	ttl := s.cfg.Session.TTLMinutes * constant.MinutesToSeconds

	if err = s.cache.Save(ctx, s.sessionKey(sessionID), model.Session{IsAdmin: true}, ttl); err != nil {
		log.Error().Err(err).Msg("failed to store admin session")

		return res, fmt.Errorf("failed to store admin session: %w", err)
	}

	log.Info().Str("sessionId", sessionID).Time("expiresAt", expiresAt).Msg("admin logged in")

	return dto.LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *serviceImpl) Logout(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if token == constant.Empty {
		return nil
	}

	claims, err := s.jwtService.ValidateSessionToken(token)
	if err != nil {
		// Nothing to revoke for a token we never issued or that already expired.
		return nil
	}

	if err = s.cache.Delete(ctx, s.sessionKey(claims.SessionID())); err != nil {
		log.Error().Err(err).Msg("failed to delete admin session")

		return fmt.Errorf("failed to delete admin session: %w", err)
	}

	log.Info().Str("sessionId", claims.SessionID()).Msg("admin logged out")

	return nil
}

func (s *serviceImpl) Authenticate(ctx context.Context, token string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Authenticate")
	defer scope.End()

	if token == constant.Empty {
		return res, nil
	}

	claims, err := s.jwtService.ValidateSessionToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("rejected session token")

		return res, nil
	}

	var session model.Session

	if err = s.cache.Get(ctx, s.sessionKey(claims.SessionID()), &session); err != nil {
		if errors.Is(err, cache.Nil) {
			return res, nil
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read admin session")

		return res, fmt.Errorf("failed to read admin session: %w", err)
	}

	res.IsAdmin = session.IsAdmin

	return res, nil
}
