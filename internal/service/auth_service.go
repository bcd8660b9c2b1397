package service

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fuzumoe/shoplist-api/internal/model"
	"github.com/fuzumoe/shoplist-api/internal/repository"
)

// Stable rejection messages; clients depend on the exact strings to tell
// "never valid" from "was valid, now revoked" from "expired".
const (
	MsgTokenInvalid = "Token is invalid. Try to login."
	MsgTokenExpired = "Token has expired. Login again to receive new token."
	MsgLoggedOut    = "You are already logged out"
	MsgNoPermission = "You do not have the appropriate permissions"
)

// ErrInvalidCredentials is returned on a bad username/password pair.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ResolutionState enumerates the possible outcomes of resolving a request's
// Authorization header.
type ResolutionState int

const (
	// StateAnonymous: no usable token was presented, or its subject no
	// longer exists. Callers decide between 403 and other handling.
	StateAnonymous ResolutionState = iota
	// StateInvalid: the token is malformed or expired.
	StateInvalid
	// StateLoggedOut: the token is cryptographically valid but revoked.
	StateLoggedOut
	// StateAuthenticated: the token is valid, unexpired and not revoked.
	StateAuthenticated
)

// Resolution is the answer to "who, if anyone, is making this request,
// and why not if rejected".
type Resolution struct {
	State   ResolutionState
	Message string
	User    *model.UserDTO
	Token   string
	Claims  *Claims
}

// AuthService combines the token codec, the revocation ledger and the user
// store into the request authentication state machine, and carries the
// login/logout/password-reset flows built on top of it.
type AuthService interface {
	// Resolve maps a raw Authorization header value to exactly one outcome.
	// The returned error is reserved for infrastructure failures.
	Resolve(authHeader string) (*Resolution, error)

	// Login verifies credentials and issues a fresh token.
	Login(username, password string) (string, error)

	// Logout revokes a still-valid token. Malformed or expired tokens are
	// rejected with the codec error instead of being recorded.
	Logout(tokenString string) error

	// ResetPassword re-hashes and stores a new password after verifying the
	// old one. Depending on policy, the presenting token is revoked too.
	ResetPassword(userID uint, tokenString, oldPassword, newPassword string) error

	// CleanupExpired prunes ledger entries old enough that natural expiry
	// already invalidates their tokens.
	CleanupExpired() error
}

type authService struct {
	users         repository.UserRepository
	blacklist     repository.BlacklistRepository
	tokens        TokenService
	revokeOnReset bool
}

// NewAuthService constructs an AuthService.
func NewAuthService(
	users repository.UserRepository,
	blacklist repository.BlacklistRepository,
	tokens TokenService,
	revokeOnReset bool,
) AuthService {
	return &authService{
		users:         users,
		blacklist:     blacklist,
		tokens:        tokens,
		revokeOnReset: revokeOnReset,
	}
}

// ExtractBearerToken pulls the token out of an Authorization header value.
// It tolerates a missing header, a missing scheme and a missing token
// segment, returning "" in each case.
func ExtractBearerToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func (s *authService) Resolve(authHeader string) (*Resolution, error) {
	tokenString := ExtractBearerToken(authHeader)
	if tokenString == "" {
		return &Resolution{State: StateAnonymous, Message: MsgNoPermission}, nil
	}

	// Signature and expiry come first; the revocation check below only
	// applies to tokens that are still cryptographically valid.
	claims, err := s.tokens.Parse(tokenString)
	if err != nil {
		switch {
		case errors.Is(err, ErrTokenExpired):
			return &Resolution{State: StateInvalid, Message: MsgTokenExpired}, nil
		case errors.Is(err, ErrTokenInvalid):
			return &Resolution{State: StateInvalid, Message: MsgTokenInvalid}, nil
		default:
			return nil, err
		}
	}

	// Revocation takes precedence over "valid".
	revoked, err := s.blacklist.IsBlacklisted(tokenString)
	if err != nil {
		return nil, err
	}
	if revoked {
		return &Resolution{State: StateLoggedOut, Message: MsgLoggedOut, Token: tokenString, Claims: claims}, nil
	}

	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The subject vanished; treat the request as anonymous.
			return &Resolution{State: StateAnonymous, Message: MsgNoPermission}, nil
		}
		return nil, err
	}

	return &Resolution{
		State:  StateAuthenticated,
		User:   user.ToDTO(),
		Token:  tokenString,
		Claims: claims,
	}, nil
}

func (s *authService) Login(username, password string) (string, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.ID)
}

func (s *authService) Logout(tokenString string) error {
	// A token that was never meaningfully valid is not worth recording.
	if _, err := s.tokens.Parse(tokenString); err != nil {
		return err
	}
	// The insert is idempotent; a duplicate revocation is a success from
	// the caller's perspective.
	return s.blacklist.Add(model.BlacklistedTokenFromString(tokenString))
}

func (s *authService) ResetPassword(userID uint, tokenString, oldPassword, newPassword string) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}
	if err := model.CheckPasswordFormat(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	if err := s.users.Update(user); err != nil {
		return err
	}

	if s.revokeOnReset && tokenString != "" {
		return s.blacklist.Add(model.BlacklistedTokenFromString(tokenString))
	}
	return nil
}

func (s *authService) CleanupExpired() error {
	cutoff := time.Now().Add(-s.tokens.Lifetime())
	return s.blacklist.RemoveExpired(cutoff)
}
