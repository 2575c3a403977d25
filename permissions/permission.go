package permissions

import (
	_ "embed"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the roles allowed on a chi route pattern. Skip marks a
// route under /admin that stays reachable without a session.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	// Skip turns every check off, for local development only.
	Skip bool `json:"skip"`

	byRoute map[string]Permission
}

func routeKey(method, path string) string {
	return method + " " + path
}

// Roles returns the roles required for method on the route pattern, nil when the route is public.
func (r *PermissionData) Roles(path, method string) []string {
	if r == nil || r.Skip {
		return nil
	}

	permission, ok := r.byRoute[routeKey(method, path)]
	if !ok || permission.Skip {
		return nil
	}

	return permission.Permissions
}

func (r *PermissionData) index() {
	r.byRoute = make(map[string]Permission, len(r.Endpoints))

	for _, endpoint := range r.Endpoints {
		if len(endpoint.Permissions) == 0 && !endpoint.Skip {
			log.Warn().Str("path", endpoint.Path).Str("method", endpoint.Method).Msg("permission entry without roles is public")
		}

		r.byRoute[routeKey(endpoint.Method, endpoint.Path)] = endpoint
	}
}

// Get loads the embedded permissions and exits when they cannot be decoded, so admin routes never open up.
func Get() *PermissionData {
	permissions, err := decode(permissionsData)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to decode embedded permissions")
	}

	if permissions.Skip {
		log.Warn().Msg("permission checks are disabled")
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}

func decode(raw []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	permissions.index()

	return &permissions, nil
}
