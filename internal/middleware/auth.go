package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/loyalty/internal/auth"
	"github.com/umalmyha/loyalty/internal/model"
)

const principalKey = "principal"

// Authorize verifies HTTP Basic credentials and checks roles against policy.
// Preflight requests are never challenged.
func Authorize(verifier auth.CredentialVerifier, policy *auth.Policy, realm string) echo.MiddlewareFunc {
	challenge := fmt.Sprintf("Basic realm=%q", realm)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method == http.MethodOptions {
				return next(c)
			}

			decision, rule := policy.Evaluate(req.URL.Path)
			switch decision {
			case auth.DecisionPermit:
				return next(c)
			case auth.DecisionDeny:
				return echo.NewHTTPError(http.StatusForbidden, "Access denied")
			}

			username, password, ok := req.BasicAuth()
			if !ok {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, challenge)
				return echo.NewHTTPError(http.StatusUnauthorized, "Full authentication is required to access this resource")
			}

			roles, err := verifier.Verify(req.Context(), username, password)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidCredentials) {
					logrus.WithField("username", username).Info("rejected invalid credentials")
					c.Response().Header().Set(echo.HeaderWWWAuthenticate, challenge)
					return echo.NewHTTPError(http.StatusUnauthorized, "Bad credentials")
				}
				return err
			}

			if !roles.HasAny(rule.AnyOf...) {
				logrus.WithFields(logrus.Fields{
					"username": username,
					"path":     req.URL.Path,
				}).Info("user lacks required role")
				return echo.NewHTTPError(http.StatusForbidden, "Access denied")
			}

			c.Set(principalKey, &model.Principal{Username: username, Roles: roles})
			return next(c)
		}
	}
}

// Principal returns authenticated user, nil is returned for public paths
func Principal(c echo.Context) *model.Principal {
	p, _ := c.Get(principalKey).(*model.Principal)
	return p
}
