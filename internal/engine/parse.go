package engine

import (
	"fmt"
	"strings"
)

// ParseRole parses user input to a Role.
// Supported: doctor (dr, physician), patient (me).
func ParseRole(input string) (Role, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "doctor", "dr", "physician":
		return RoleDoctor, nil
	case "patient", "me":
		return RolePatient, nil
	default:
		return "", ValidationError{Field: "role", Reason: fmt.Sprintf("unknown role %q (want doctor|patient)", input)}
	}
}

func parseStoredRole(s string) Role {
	r := Role(strings.TrimSpace(strings.ToLower(s)))
	if r.IsValid() {
		return r
	}
	return DefaultRole
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
