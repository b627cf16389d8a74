package auth

import (
	"fmt"

	"github.com/aretw0/introspection"
)

// GateState exposes the gate configuration for observability.
type GateState struct {
	CookieName  string `json:"cookie_name"`
	SignInPath  string `json:"sign_in_path"`
	CheckerType string `json:"checker_type"`
}

// State implements introspection.Introspectable.
func (g *Gate) State() any {
	return GateState{
		CookieName:  g.cookieName,
		SignInPath:  g.signInPath,
		CheckerType: fmt.Sprintf("%T", g.checker),
	}
}

// ComponentType implements introspection.Component.
func (g *Gate) ComponentType() string {
	return "session-gate"
}

var _ introspection.Introspectable = (*Gate)(nil)
var _ introspection.Component = (*Gate)(nil)
