package auth

import (
	"strings"

	"github.com/umalmyha/loyalty/internal/model"
)

const anyPathSuffix = "/**"

// Decision is the outcome of policy evaluation for a path
type Decision int

const (
	// DecisionDeny means path is not covered by any rule
	DecisionDeny Decision = iota
	// DecisionPermit means path is public
	DecisionPermit
	// DecisionAuthenticate means path requires one of the rule roles
	DecisionAuthenticate
)

// Rule grants access to paths matching pattern for users with any of the roles.
// Pattern is either exact path or prefix ending with /** which matches prefix itself and everything below it.
type Rule struct {
	Pattern string
	AnyOf   model.Roles
}

func (r Rule) matches(path string) bool {
	return matchPattern(r.Pattern, path)
}

// Policy is ordered set of rules, first matching rule wins.
// Paths which match neither public patterns nor rules are denied.
type Policy struct {
	public []string
	rules  []Rule
}

// NewPolicy builds new policy
func NewPolicy(public []string, rules ...Rule) *Policy {
	return &Policy{public: public, rules: rules}
}

// Evaluate finds decision and, for protected paths, the rule which applies
func (p *Policy) Evaluate(path string) (Decision, Rule) {
	path = normalizePath(path)

	for _, pattern := range p.public {
		if matchPattern(pattern, path) {
			return DecisionPermit, Rule{}
		}
	}

	for _, r := range p.rules {
		if r.matches(path) {
			return DecisionAuthenticate, r
		}
	}
	return DecisionDeny, Rule{}
}

// APIPolicy returns policy for customers and gifts api
func APIPolicy(public ...string) *Policy {
	employee := model.Roles{model.RoleEmployee}
	admin := model.Roles{model.RoleAdmin}

	return NewPolicy(
		public,
		Rule{Pattern: "/api/customers/find/**", AnyOf: employee},
		Rule{Pattern: "/api/gifts/find/**", AnyOf: employee},
		Rule{Pattern: "/api/gifts/auth", AnyOf: model.Roles{model.RoleEmployee, model.RoleAdmin}},
		Rule{Pattern: "/api/customers/insert/**", AnyOf: admin},
		Rule{Pattern: "/api/customers/delete/**", AnyOf: admin},
		Rule{Pattern: "/api/gifts/insert/**", AnyOf: admin},
		Rule{Pattern: "/api/gifts/delete/**", AnyOf: admin},
	)
}

func matchPattern(pattern, path string) bool {
	if strings.HasSuffix(pattern, anyPathSuffix) {
		prefix := strings.TrimSuffix(pattern, anyPathSuffix)
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == normalizePath(pattern)
}

func normalizePath(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}
	return path
}
