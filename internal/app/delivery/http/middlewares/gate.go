package middlewares

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"yuktah-service/internal/app/models"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/exceptions"
	"yuktah-service/internal/pkg/utils"
)

// RouteClass decides what a request must present before reaching a handler.
type RouteClass int

const (
	// ClassPublic routes carry no session check at all.
	ClassPublic RouteClass = iota
	// ClassAuthenticated routes accept any valid session regardless of role.
	ClassAuthenticated
	// ClassRoleRestricted routes additionally require a specific role.
	ClassRoleRestricted
)

// FailureShape decides how a denial is rendered: JSON for API consumers,
// a login redirect for browser page loads.
type FailureShape int

const (
	ShapeAPI FailureShape = iota
	ShapePage
)

// RouteRule classifies every path under Prefix. Matching is by path segment:
// "/admin" covers "/admin" and "/admin/users" but not "/administrator".
// Capability, when set on a role-restricted rule, must appear in the session's
// capability list as well. All role and capability enforcement lives in this
// table; handlers never repeat it.
type RouteRule struct {
	Prefix     string
	Class      RouteClass
	Role       string
	Capability string
	Shape      FailureShape
}

// AuthorizationGate is the single place requests are admitted or denied.
// Precedence when several rules match a path: public beats role-restricted
// beats authenticated, and within one class the longest prefix wins. A path no
// rule matches defaults to authenticated-any with an API failure shape, so a
// route someone forgets to register fails closed.
func (m *Middlewares) AuthorizationGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rule := m.classify(r.URL.Path)

		if rule.Class == ClassPublic {
			next.ServeHTTP(w, r)
			return
		}

		token := extractSessionToken(r)
		if token == "" {
			m.deny(w, r, rule, exceptions.ErrTokenMissing(nil))
			return
		}

		claims, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.deny(w, r, rule, err)
			return
		}

		// Sessions are stateless, so a facility disable cannot invalidate an
		// already-minted token. Checking the account on every request makes
		// the disable bite immediately anyway.
		if claims.Role == constvars.RoleFacility {
			enabled, err := m.FacilityChecker.IsEnabled(r.Context(), claims.Subject)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			if !enabled {
				m.deny(w, r, rule, exceptions.ErrAccountDisabled(nil))
				return
			}
		}

		if rule.Class == ClassRoleRestricted {
			if claims.Role != rule.Role {
				m.deny(w, r, rule, exceptions.ErrRoleNotAllowed(nil))
				return
			}
			if rule.Capability != "" && !claims.HasCapability(rule.Capability) {
				m.deny(w, r, rule, exceptions.ErrMissingCapability(nil))
				return
			}
		}

		ctx := injectSubject(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) classify(path string) RouteRule {
	matched := make(map[RouteClass]RouteRule)
	matchedLen := make(map[RouteClass]int)

	for _, rule := range m.Rules {
		if !prefixMatches(path, rule.Prefix) {
			continue
		}
		if current, ok := matchedLen[rule.Class]; !ok || len(rule.Prefix) > current {
			matched[rule.Class] = rule
			matchedLen[rule.Class] = len(rule.Prefix)
		}
	}

	for _, class := range []RouteClass{ClassPublic, ClassRoleRestricted, ClassAuthenticated} {
		if rule, ok := matched[class]; ok {
			return rule
		}
	}
	return RouteRule{Class: ClassAuthenticated, Shape: ShapeAPI}
}

func (m *Middlewares) deny(w http.ResponseWriter, r *http.Request, rule RouteRule, err error) {
	if rule.Shape == ShapePage {
		login := m.loginPathForRole(rule.Role)
		http.Redirect(w, r, login+"?next="+url.QueryEscape(r.URL.RequestURI()), constvars.StatusFound)
		return
	}
	utils.BuildErrorResponse(m.Log, w, err)
}

func (m *Middlewares) loginPathForRole(role string) string {
	gate := m.InternalConfig.Gate
	switch role {
	case constvars.RoleAdmin:
		return gate.AdminLoginPath
	case constvars.RoleFacility:
		return gate.FacilityLoginPath
	default:
		return gate.PatientLoginPath
	}
}

// extractSessionToken prefers the Authorization header over the session
// cookie when both are present.
func extractSessionToken(r *http.Request) string {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(header, constvars.BearerPrefix) {
		return strings.TrimPrefix(header, constvars.BearerPrefix)
	}
	cookie, err := r.Cookie(constvars.SessionCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

func injectSubject(ctx context.Context, claims *models.SessionClaims) context.Context {
	ctx = context.WithValue(ctx, constvars.CONTEXT_SUBJECT_ID_KEY, claims.Subject)
	ctx = context.WithValue(ctx, constvars.CONTEXT_SUBJECT_EMAIL_KEY, claims.Email)
	ctx = context.WithValue(ctx, constvars.CONTEXT_SUBJECT_ROLE_KEY, claims.Role)
	ctx = context.WithValue(ctx, constvars.CONTEXT_SUBJECT_CAPS_KEY, claims.Capabilities)
	return ctx
}

func prefixMatches(path, prefix string) bool {
	if prefix == "" {
		return false
	}
	if path == prefix {
		return true
	}
	if strings.HasSuffix(prefix, "/") {
		return strings.HasPrefix(path, prefix)
	}
	return strings.HasPrefix(path, prefix+"/")
}
