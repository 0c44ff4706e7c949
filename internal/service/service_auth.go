package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/f4f-study-portal/internal/config"
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/store"
	"github.com/MKhiriev/f4f-study-portal/internal/utils"
	"github.com/MKhiriev/f4f-study-portal/internal/validators"
	"github.com/MKhiriev/f4f-study-portal/models"
)

// authService is the concrete implementation of AuthService.
// It verifies bcrypt password hashes and issues role-carrying JWTs.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	admin config.Admin

	// hashCost is the bcrypt cost of new password hashes.
	hashCost int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.StructuredConfig, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.Auth.TokenSignKey,
		tokenIssuer:    cfg.Auth.TokenIssuer,
		tokenDuration:  cfg.Auth.TokenDuration,
		admin:          cfg.Admin,
		hashCost:       bcrypt.DefaultCost,
		logger:         logger,
	}
}

// Login authenticates an existing user.
//
// Returns the stored user without its password hash or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrWrongPassword if the user does not exist or the password does not
//     match, so that callers cannot probe for usernames.
//   - A wrapped storage error if the repository lookup fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Str("func", "*authService.Login").Str("username", req.Username).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("func", "*authService.Login").Str("username", req.Username).Msg("unknown user")
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Str("func", "*authService.Login").Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Info().Str("func", "*authService.Login").Int64("id", user.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	user.Password = ""
	return user, nil
}

// CreateToken issues a signed JWT carrying the user id and role.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) EnsureAdmin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if a.admin.Username == "" || a.admin.Password == "" {
		log.Warn().Str("func", "*authService.EnsureAdmin").Msg("no bootstrap administrator configured")
		return nil
	}

	_, err := a.userRepository.FindUserByUsername(ctx, a.admin.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("admin lookup failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(a.admin.Password), a.hashCost)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	_, err = a.userRepository.CreateUser(ctx, models.User{
		Username: a.admin.Username,
		Password: string(hash),
		Role:     models.RoleAdministrator,
	})
	if err != nil && !errors.Is(err, store.ErrLoginAlreadyExists) {
		return fmt.Errorf("admin creation failed: %w", err)
	}

	log.Info().Str("func", "*authService.EnsureAdmin").Str("username", a.admin.Username).Msg("bootstrap administrator created")
	return nil
}
