package client

import "context"

// SignInState is the client-side view of a sign-in flow
type SignInState int

// Sign-in flow states
const (
	SignInIdle SignInState = iota
	SignInPendingVerification
	SignInNeedsSecondFactor
	SignInComplete
)

// String returns the readable name of the sign-in state
func (s SignInState) String() string {
	switch s {
	case SignInIdle:
		return "idle"
	case SignInPendingVerification:
		return "pending_verification"
	case SignInNeedsSecondFactor:
		return "needs_second_factor"
	case SignInComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Session identifies an authenticated user
type Session struct {
	UserID string
	Token  string
	State  SignInState
}

// SessionProvider is the external identity capability the client calls.
// Implementations wrap a hosted auth service; none ship with this package.
type SessionProvider interface {
	// CreateSession starts a sign-in with the user's credentials. The
	// returned session's State tells the caller whether further
	// verification is needed.
	CreateSession(ctx context.Context, identifier, password string) (Session, error)

	// VerifySecondFactor completes a sign-in that came back
	// SignInNeedsSecondFactor or SignInPendingVerification
	VerifySecondFactor(ctx context.Context, session Session, code string) (Session, error)
}
