package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/umalmyha/loyalty/internal/model"
)

func TestAPIPolicy(t *testing.T) {
	policy := APIPolicy("/swagger/**")

	t.Log("read endpoints require employee")
	{
		for _, path := range []string{
			"/api/customers/find/all",
			"/api/customers/find/points/5",
			"/api/gifts/find/code/G*",
			"/api/gifts/find/price/100/",
		} {
			decision, rule := policy.Evaluate(path)
			require.Equal(t, DecisionAuthenticate, decision, "path %s must be protected", path)
			require.Equal(t, model.Roles{model.RoleEmployee}, rule.AnyOf, "path %s must require employee", path)
		}
	}

	t.Log("write endpoints require admin")
	{
		for _, path := range []string{
			"/api/customers/insert",
			"/api/customers/delete/id/42",
			"/api/gifts/insert",
			"/api/gifts/delete/id/42",
		} {
			decision, rule := policy.Evaluate(path)
			require.Equal(t, DecisionAuthenticate, decision, "path %s must be protected", path)
			require.Equal(t, model.Roles{model.RoleAdmin}, rule.AnyOf, "path %s must require admin", path)
		}
	}

	t.Log("auth probe accepts both roles")
	{
		decision, rule := policy.Evaluate("/api/gifts/auth")
		require.Equal(t, DecisionAuthenticate, decision)
		require.True(t, rule.AnyOf.HasAny(model.RoleEmployee))
		require.True(t, rule.AnyOf.HasAny(model.RoleAdmin))
	}

	t.Log("public paths are permitted")
	{
		decision, _ := policy.Evaluate("/swagger/index.html")
		require.Equal(t, DecisionPermit, decision)
	}

	t.Log("everything else is denied")
	{
		for _, path := range []string{"/", "/api", "/api/customers", "/api/customers/findall", "/api/gifts/auth/extra"} {
			decision, _ := policy.Evaluate(path)
			require.Equal(t, DecisionDeny, decision, "path %s must be denied", path)
		}
	}
}

func TestMatchPattern(t *testing.T) {
	t.Log("prefix pattern matches prefix itself and nested paths")
	{
		require.True(t, matchPattern("/a/b/**", "/a/b"))
		require.True(t, matchPattern("/a/b/**", "/a/b/c/d"))
		require.False(t, matchPattern("/a/b/**", "/a/bc"))
	}

	t.Log("exact pattern matches only the path")
	{
		require.True(t, matchPattern("/a/b", "/a/b"))
		require.False(t, matchPattern("/a/b", "/a/b/c"))
	}
}
