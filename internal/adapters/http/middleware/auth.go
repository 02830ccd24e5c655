package middleware

import (
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/copy-census/internal/adapters/http/dto"
	"github.com/jsamuelsen/copy-census/internal/platform/config"
	"github.com/jsamuelsen/copy-census/internal/platform/logging"
)

const (
	// ContextKeyClaims is the gin context key for storing extracted claims.
	ContextKeyClaims = "claims"

	defaultSubjectHeader = "X-User-ID"
	defaultRolesHeader   = "X-User-Roles"
)

// Claims identify the editor behind a request. The gateway in front of the
// service authenticates users and forwards identity as headers.
type Claims struct {
	Subject string
	Roles   []string
}

// HasAnyRole reports whether the claims carry at least one of roles.
func (c *Claims) HasAnyRole(roles ...string) bool {
	return slices.ContainsFunc(roles, func(r string) bool {
		return slices.Contains(c.Roles, r)
	})
}

// ExtractClaims reads the subject and comma-separated roles headers named by
// cfg, falling back to X-User-ID and X-User-Roles.
func ExtractClaims(c *gin.Context, cfg *config.AuthConfig) *Claims {
	subjectHeader := defaultSubjectHeader
	rolesHeader := defaultRolesHeader

	if cfg != nil {
		if cfg.SubjectHeader != "" {
			subjectHeader = cfg.SubjectHeader
		}

		if cfg.RolesHeader != "" {
			rolesHeader = cfg.RolesHeader
		}
	}

	claims := &Claims{Subject: strings.TrimSpace(c.GetHeader(subjectHeader))}

	for role := range strings.SplitSeq(c.GetHeader(rolesHeader), ",") {
		if trimmed := strings.TrimSpace(role); trimmed != "" {
			claims.Roles = append(claims.Roles, trimmed)
		}
	}

	return claims
}

// GetClaims returns the claims stored by RequireAuth, or nil.
func GetClaims(c *gin.Context) *Claims {
	if v, ok := c.Get(ContextKeyClaims); ok {
		if claims, ok := v.(*Claims); ok {
			return claims
		}
	}

	return nil
}

// RequireAuth rejects requests without a subject with 401 and stores the
// claims for later middleware and handlers.
func RequireAuth(cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ExtractClaims(c, cfg)
		if claims.Subject == "" {
			abortWithCode(c, dto.ErrorCodeUnauthorized, "authentication required")
			return
		}

		c.Set(ContextKeyClaims, claims)

		c.Request = c.Request.WithContext(logging.WithEditor(c.Request.Context(), claims.Subject))

		c.Next()
	}
}

// RequireAnyRole rejects requests whose claims hold none of roles with 403.
func RequireAnyRole(cfg *config.AuthConfig, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			claims = ExtractClaims(c, cfg)
			c.Set(ContextKeyClaims, claims)
		}

		if !claims.HasAnyRole(roles...) {
			abortWithCode(c, dto.ErrorCodeForbidden,
				"insufficient permissions: one of roles ["+strings.Join(roles, ", ")+"] required")

			return
		}

		c.Next()
	}
}

func abortWithCode(c *gin.Context, code, message string) {
	resp := dto.NewErrorResponse(code, message).WithTraceID(dto.GetTraceID(c))
	c.AbortWithStatusJSON(dto.HTTPStatusFromCode(code), resp)
}
