package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantRoles []string
	}{
		{name: "admin list", path: "/admin/bookings", method: http.MethodGet, wantRoles: []string{"admin"}},
		{name: "export", path: "/admin/bookings/export", method: http.MethodGet, wantRoles: []string{"admin"}},
		{name: "cancel", path: "/admin/bookings/{id}/cancel", method: http.MethodPatch, wantRoles: []string{"admin"}},
		{name: "calendar", path: "/admin/calendar", method: http.MethodGet, wantRoles: []string{"admin"}},
		{name: "login is open", path: "/admin/login", method: http.MethodPost},
		{name: "public booking", path: "/bookings", method: http.MethodPost},
		{name: "wrong method", path: "/admin/bookings", method: http.MethodDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantRoles, data.Roles(tt.path, tt.method))
		})
	}
}

func TestRoles_SkipAll(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	data.Skip = true

	assert.Nil(t, data.Roles("/admin/bookings", http.MethodGet))
}

func TestRoles_NilData(t *testing.T) {
	var data *permissions.PermissionData

	assert.Nil(t, data.Roles("/admin/bookings", http.MethodGet))
}
