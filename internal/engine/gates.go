package engine

import "vitacoach/internal/storage"

// RequireAuth returns ErrNotAuthenticated unless the blob carries a session.
func RequireAuth(st *storage.State) error {
	if !st.IsAuthenticated {
		return ErrNotAuthenticated
	}
	return nil
}

// RequireRole checks the session and that the active view is role.
func RequireRole(st *storage.State, role Role) error {
	if err := RequireAuth(st); err != nil {
		return err
	}
	actual := parseStoredRole(st.Role)
	if actual != role {
		return RoleError{Required: role, Actual: actual}
	}
	return nil
}

// CanAccess is the non-error form used by the board and status views.
func CanAccess(st *storage.State, role Role) bool {
	return RequireRole(st, role) == nil
}
