package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/travel-journal-api/internal/config"
	"github.com/MKhiriev/travel-journal-api/internal/logger"
	"github.com/MKhiriev/travel-journal-api/internal/store"
	"github.com/MKhiriev/travel-journal-api/internal/utils"
	"github.com/MKhiriev/travel-journal-api/internal/validators"
	"github.com/MKhiriev/travel-journal-api/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// passwordHashCost is the bcrypt cost of newly stored hashes.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		validator:        validator,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// SignUp creates a new user account.
//
// The email is normalised to lower case before validation. The password is
// replaced by its bcrypt hash, so the returned user never carries it.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided joined with the field violations;
//   - store.ErrEmailAlreadyExists if the email is taken;
//   - a wrapped storage error otherwise.
func (a *authService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Name = strings.TrimSpace(user.Name)
	user.Email = normalizeEmail(user.Email)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(user.Password, a.passwordHashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}
	user.Password = ""
	user.PasswordHash = hash
	user.CreatedAt = now()

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Public(), nil
}

// SignIn authenticates an existing user by email and password.
//
// An unknown email and a wrong password both yield ErrWrongCredentials, so a
// caller cannot probe which emails are registered.
func (a *authService) SignIn(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials.Email = normalizeEmail(credentials.Email)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("email", credentials.Email).Msg("sign in with unknown email")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.ComparePassword(foundUser.PasswordHash, credentials.Password) {
		log.Debug().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser.Public(), nil
}

// GetUser returns the public view of the user with userID.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Public(), nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
