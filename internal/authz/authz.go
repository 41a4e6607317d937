// Package authz decides which back-office operations a role may perform.
// Permissions are strings of the form "<module>.<resource>:<action>" checked
// against a casbin RBAC policy.
package authz

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
	"github.com/gin-gonic/gin"

	"institute-portal-backend/internal/logger"
)

// RBACModel is the casbin model shipped in config/authz/model.conf
const RBACModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

const (
	ActionRead    = "read"
	ActionWrite   = "write"
	ActionApprove = "approve"
	ActionAdmin   = "admin"
)

// Gin context key holding the authenticated role
const ContextKeyRole = "role"

// Permission is an object/action pair such as hr.employees:write
type Permission struct {
	Object string
	Action string
}

// ParsePermission splits "hr.employees:write". A missing action means read.
func ParsePermission(s string) (Permission, error) {
	s = strings.TrimSpace(s)
	obj, act, found := strings.Cut(s, ":")
	if !found {
		act = ActionRead
	}
	if obj == "" || act == "" || !strings.Contains(obj, ".") {
		return Permission{}, fmt.Errorf("authz: malformed permission %q", s)
	}
	return Permission{Object: obj, Action: act}, nil
}

// MustPermission is ParsePermission for literals in route tables
func MustPermission(s string) Permission {
	p, err := ParsePermission(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Permission) String() string {
	return p.Object + ":" + p.Action
}

// Subject maps a role to its casbin subject
func Subject(role string) string {
	role = strings.TrimSpace(strings.ToLower(role))
	if role == "" {
		role = "anonymous"
	}
	return "role:" + role
}

// Authorizer evaluates permissions for roles
type Authorizer struct {
	enforcer *casbin.Enforcer
}

// NewAuthorizer loads the model and policy files
func NewAuthorizer(modelPath, policyPath string) (*Authorizer, error) {
	enforcer, err := casbin.NewEnforcer(modelPath, fileadapter.NewAdapter(policyPath))
	if err != nil {
		return nil, fmt.Errorf("authz: load %s / %s: %w", modelPath, policyPath, err)
	}
	return &Authorizer{enforcer: enforcer}, nil
}

// NewAuthorizerFromText builds an authorizer from in-memory model and policy
// text, used by tests and the CLI
func NewAuthorizerFromText(modelText, policyText string) (*Authorizer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("authz: parse model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m, stringadapter.NewAdapter(policyText))
	if err != nil {
		return nil, fmt.Errorf("authz: load policy: %w", err)
	}
	return &Authorizer{enforcer: enforcer}, nil
}

// Can reports whether role holds perm. Enforcer errors deny.
func (a *Authorizer) Can(role string, perm Permission) bool {
	ok, err := a.enforcer.Enforce(Subject(role), perm.Object, perm.Action)
	if err != nil {
		logger.New().WithError(err).WithField("permission", perm.String()).Error("authz: enforce failed")
		return false
	}
	return ok
}

// Permissions lists the catalog permissions granted to role, for the profile
// endpoint
func (a *Authorizer) Permissions(role string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range Catalog() {
		perms := []Permission{m.Permission}
		for _, e := range m.Entries {
			perms = append(perms, e.Permission)
			for _, act := range e.Actions {
				perms = append(perms, act.Permission)
			}
		}
		for _, p := range perms {
			key := p.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			if a.Can(role, p) {
				out = append(out, key)
			}
		}
	}
	return out
}

// RequirePermission rejects requests whose role lacks perm. It expects the
// authentication middleware to have stored the role on the context.
func (a *Authorizer) RequirePermission(perm string) gin.HandlerFunc {
	p := MustPermission(perm)
	return func(c *gin.Context) {
		role := c.GetString(ContextKeyRole)
		if role == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		if !a.Can(role, p) {
			logger.WithContext(c).WithFields(map[string]interface{}{
				"role":       role,
				"permission": p.String(),
				"path":       c.FullPath(),
			}).Warn("permission denied")
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied", "permission": p.String()})
			c.Abort()
			return
		}
		c.Next()
	}
}
