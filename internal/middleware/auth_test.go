package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/loyalty/internal/auth"
	"github.com/umalmyha/loyalty/internal/model"
	"golang.org/x/crypto/bcrypt"
)

type failingVerifier struct {
	err error
}

func (v failingVerifier) Verify(context.Context, string, string) (model.Roles, error) {
	return nil, v.err
}

func serve(mw echo.MiddlewareFunc, req *http.Request, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	return rec, mw(next)(c)
}

//nolint:funlen // function contains a lot of inlined tests
func TestAuthorize(t *testing.T) {
	creds, err := auth.NewStaticCredentials(bcrypt.MinCost, auth.DefaultAccounts("user", "admin")...)
	require.NoError(t, err, "failed to build credentials")

	mw := Authorize(creds, auth.APIPolicy("/swagger/**"), "webservice")

	t.Log("authenticated user is available to handlers")
	{
		var principal *model.Principal
		req := httptest.NewRequest(http.MethodGet, "/api/customers/find/all", nil)
		req.SetBasicAuth("admin", "admin")

		_, err := serve(mw, req, func(c echo.Context) error {
			principal = Principal(c)
			return nil
		})
		require.NoError(t, err, "admin must pass employee gate")
		require.NotNil(t, principal, "principal must be stored in context")
		require.Equal(t, "admin", principal.Username)
		require.True(t, principal.Roles.Has(model.RoleAdmin))
	}

	t.Log("public path has no principal")
	{
		var principal *model.Principal
		called := false
		req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)

		_, err := serve(mw, req, func(c echo.Context) error {
			called = true
			principal = Principal(c)
			return nil
		})
		require.NoError(t, err)
		require.True(t, called, "public path must reach handler")
		require.Nil(t, principal)
	}

	t.Log("missing credentials are challenged")
	{
		req := httptest.NewRequest(http.MethodGet, "/api/gifts/auth", nil)
		rec, err := serve(mw, req, func(echo.Context) error {
			return errors.New("handler must not be called")
		})

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusUnauthorized, httpErr.Code)
		require.Equal(t, `Basic realm="webservice"`, rec.Header().Get(echo.HeaderWWWAuthenticate))
	}

	t.Log("insufficient role is forbidden")
	{
		req := httptest.NewRequest(http.MethodPost, "/api/gifts/insert", nil)
		req.SetBasicAuth("user", "user")
		_, err := serve(mw, req, func(echo.Context) error {
			return errors.New("handler must not be called")
		})

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusForbidden, httpErr.Code)
	}

	t.Log("verifier failure is passed to error handler")
	{
		storeErr := errors.New("connection refused")
		failing := Authorize(failingVerifier{err: storeErr}, auth.APIPolicy(), "webservice")

		req := httptest.NewRequest(http.MethodGet, "/api/gifts/find/all", nil)
		req.SetBasicAuth("user", "user")
		_, err := serve(failing, req, func(echo.Context) error {
			return nil
		})
		require.ErrorIs(t, err, storeErr)
	}
}
