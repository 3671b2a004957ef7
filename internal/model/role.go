package model

import "strings"

// Role canonical role category
type Role string

const (
	RoleEfetivo      Role = "EFETIVO"      // permanent staff
	RoleComissionado Role = "COMISSIONADO" // appointed positions
	RoleEstagiario   Role = "ESTAGIÁRIO"   // interns
	RoleOutros       Role = "OUTROS"       // catch-all for anything unrecognised
)

// roleRewrites feminine and spelling variants folded into the canonical names, applied in order
var roleRewrites = []struct{ from, to string }{
	{"COMISSIONADA", "COMISSIONADO"},
	{"EFETIVA", "EFETIVO"},
	{"ESTÁGIO", "ESTAGIÁRIO"},
	{"ESTAGIARIO", "ESTAGIÁRIO"},
	{"ESTAGIÁRIA", "ESTAGIÁRIO"},
}

// ParseRole maps a free-text CARGO value to a Role.
// It is the only producer of Role values; unknown input yields RoleOutros.
func ParseRole(raw string) Role {
	s := strings.ToUpper(strings.TrimSpace(raw))
	for _, rw := range roleRewrites {
		s = strings.Replace(s, rw.from, rw.to, 1)
	}

	switch Role(s) {
	case RoleEfetivo, RoleComissionado, RoleEstagiario:
		return Role(s)
	default:
		return RoleOutros
	}
}

// String returns the canonical label
func (r Role) String() string {
	return string(r)
}
