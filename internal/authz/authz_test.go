package authz

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shippedAuthorizer(t *testing.T) *Authorizer {
	t.Helper()
	a, err := NewAuthorizer(
		filepath.Join("..", "..", "config", "authz", "model.conf"),
		filepath.Join("..", "..", "config", "authz", "policy.csv"),
	)
	require.NoError(t, err)
	return a
}

func TestParsePermission(t *testing.T) {
	p, err := ParsePermission("hr.employees:write")
	require.NoError(t, err)
	assert.Equal(t, Permission{Object: "hr.employees", Action: "write"}, p)
	assert.Equal(t, "hr.employees:write", p.String())

	p, err = ParsePermission("payroll.runs")
	require.NoError(t, err)
	assert.Equal(t, ActionRead, p.Action)

	for _, bad := range []string{"", ":read", "employees:read", "hr.employees:"} {
		_, err := ParsePermission(bad)
		assert.Error(t, err, bad)
	}
	assert.Panics(t, func() { MustPermission("nope") })
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "role:hr", Subject(" HR "))
	assert.Equal(t, "role:anonymous", Subject(""))
}

func TestShippedPolicy(t *testing.T) {
	a := shippedAuthorizer(t)

	tests := []struct {
		role string
		perm string
		want bool
	}{
		{"admin", "admin.users:admin", true},
		{"admin", "payroll.runs:approve", true},
		{"hr", "hr.employees:write", true},
		{"hr", "payroll.runs:read", true},
		{"hr", "payroll.runs:approve", false},
		{"hr", "dashboard.overview:read", true},
		{"finance", "payroll.runs:approve", true},
		{"finance", "procurement.cases:write", false},
		{"communications", "communications.news:approve", true},
		{"communications", "hr.employees:read", false},
		{"credentialing", "credentialing.preregistrations:approve", true},
		{"viewer", "governance.portarias:read", true},
		{"viewer", "governance.portarias:write", false},
		{"viewer", "admin.users:admin", false},
		{"unknown", "dashboard.overview:read", false},
	}
	for _, tt := range tests {
		t.Run(tt.role+" "+tt.perm, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Can(tt.role, MustPermission(tt.perm)))
		})
	}
}

func TestModelConstMatchesShippedFile(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "config", "authz", "model.conf"))
	require.NoError(t, err)

	policy, err := os.ReadFile(filepath.Join("..", "..", "config", "authz", "policy.csv"))
	require.NoError(t, err)

	fromText, err := NewAuthorizerFromText(RBACModel, string(policy))
	require.NoError(t, err)
	fromFile, err := NewAuthorizerFromText(string(raw), string(policy))
	require.NoError(t, err)

	for _, role := range []string{"admin", "hr", "viewer", "inventory"} {
		assert.Equal(t, fromFile.Permissions(role), fromText.Permissions(role), role)
	}
}

func TestVisibleModules(t *testing.T) {
	a := shippedAuthorizer(t)

	keys := func(mods []Module) []string {
		var out []string
		for _, m := range mods {
			out = append(out, m.Key)
		}
		return out
	}

	assert.Len(t, a.VisibleModules("admin"), len(Catalog()))
	assert.Equal(t, []string{"hr", "payroll", "transparency"}, keys(a.VisibleModules("hr")))
	assert.Equal(t, []string{"transparency", "assets"}, keys(a.VisibleModules("inventory")))

	// hr reads payroll but cannot close it
	for _, m := range a.VisibleModules("hr") {
		if m.Key != "payroll" {
			continue
		}
		for _, e := range m.Entries {
			for _, act := range e.Actions {
				assert.NotEqual(t, "close", act.Key)
			}
		}
	}

	assert.True(t, a.CanSeeModule("finance", "payroll"))
	assert.False(t, a.CanSeeModule("finance", "admin"))
	assert.False(t, a.CanSeeModule("admin", "missing"))
}

func TestPermissions(t *testing.T) {
	a := shippedAuthorizer(t)
	perms := a.Permissions("governance")
	assert.Contains(t, perms, "governance.portarias:approve")
	assert.Contains(t, perms, "transparency.reports:read")
	assert.NotContains(t, perms, "payroll.runs:read")
}

func TestRequirePermission(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := shippedAuthorizer(t)

	build := func(role string) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if role != "" {
				c.Set(ContextKeyRole, role)
			}
			c.Next()
		})
		r.POST("/payroll/runs/:id/close", a.RequirePermission("payroll.runs:approve"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		return r
	}

	tests := []struct {
		role string
		want int
	}{
		{"", http.StatusUnauthorized},
		{"hr", http.StatusForbidden},
		{"finance", http.StatusNoContent},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/payroll/runs/1/close", nil)
		build(tt.role).ServeHTTP(w, req)
		assert.Equal(t, tt.want, w.Code, "role %q", tt.role)
	}
}
