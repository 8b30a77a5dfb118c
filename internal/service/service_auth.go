package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/internal/validators"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// SessionCookieName is the cookie carrying the signed editor session token.
const SessionCookieName = "editor_session"

// authService is the concrete implementation of AuthService.
// It verifies editor credentials against bcrypt hashes and manages the JWT
// session cookie.
type authService struct {
	// userRepository is the data-access layer used to look up editors.
	userRepository store.UserRepository

	// cookies and drafts are used by the post-login hooks.
	cookies TrustCookieService
	drafts  DraftService

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	cookies TrustCookieService,
	drafts DraftService,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		cookies:        cookies,
		drafts:         drafts,
		validator:      validators.NewDraftValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates an editor.
//
// Returns the editor record or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - ErrWrongPassword if the login is unknown or the password does not match
//     the stored bcrypt hash.
//   - A wrapped storage error if the repository lookup fails.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, credentials.Login)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("login", credentials.Login).Msg("unknown login")
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Str("login", credentials.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Warn().Int64("id", foundUser.UserID).Str("login", foundUser.Login).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// StartSession logs the editor in and sets the session cookie. The
// post-login hooks (user trust cookie, staging sweep) never fail the login.
func (a *authService) StartSession(ctx context.Context, scope Scope, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.Login(ctx, credentials)
	if err != nil {
		return models.User{}, err
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.StartSession").Int64("user_id", user.UserID).Msg("error creating token")
		return models.User{}, err
	}
	scope.Cookies.Set(SessionCookieName, token.String(), a.tokenDuration)

	if err = a.cookies.SetUserCookie(ctx, scope, user.UserID); err != nil {
		log.Err(err).Str("func", "*authService.StartSession").Int64("user_id", user.UserID).
			Msg("error setting user trust cookie")
	}

	if _, err = a.drafts.Sweep(ctx); err != nil {
		log.Err(err).Str("func", "*authService.StartSession").Msg("error sweeping staging area")
	}

	return user, nil
}

// EndSession removes the session cookie. Trust cookies are kept so that a
// later anonymous submission can still be staged.
func (a *authService) EndSession(_ context.Context, scope Scope) {
	scope.Cookies.Set(SessionCookieName, "", -1)
}

func (a *authService) RefreshSession(ctx context.Context, scope Scope) error {
	if !scope.Authenticated {
		return ErrTokenIsExpiredOrInvalid
	}

	token, err := a.CreateToken(ctx, models.User{UserID: scope.UserID})
	if err != nil {
		return err
	}
	scope.Cookies.Set(SessionCookieName, token.String(), a.tokenDuration)

	return nil
}
