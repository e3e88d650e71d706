package usecase

import (
	"context"

	"github.com/chrono-hq/chrono-auth/internal/pkg/jwt"
)

// Logout records the logout fact for the calling principal.
//
// Session tokens carry no server-side state, so the only work here is the
// audit trail; the transport layer clears the session cookie. Anonymous
// callers are a no-op rather than an error so repeated logouts stay
// idempotent.
func (s *Usecase) Logout(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "Logout")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil
	}

	s.recordActivity(ctx, ActivityEvent{
		Username: clm.Identity,
		Action:   "LOGOUT",
		Details:  "user logged out",
	})

	return nil
}
