package services

import (
	"context"
	"mountspa_server/database"
	"mountspa_server/lib"
	"mountspa_server/structs"
	"mountspa_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService authenticates admin accounts. The public configurator never
// authenticates; sessions exist only for the admin surfaces.
type AuthService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	cacheService *CacheService
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB) *AuthService {
	return &AuthService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		cacheService: NewCacheService(logger, cfg),
	}
}

func (as *AuthService) Login(authRequest *structs.AuthRequest) (*tables.User, error) {
	startTime := time.Now()

	user := &tables.User{}
	err := database.WithRetry(context.Background(), func() error {
		return as.db.NewSelect().
			Model(user).
			Where("email = ?", authRequest.Email).
			Scan(context.Background())
	})
	if err != nil {
		mappedErr := lib.MapPgError(err)

		// Could be a legitimate "user not found"; only unexpected errors matter
		if !lib.IsNotFound(mappedErr) {
			as.logger.Error("Unexpected database error during login",
				gecho.Field("error", mappedErr),
				gecho.Field("original_error", err),
			)
		} else {
			as.logger.Debug("User not found during login attempt", gecho.Field("identifier", authRequest.Email))
		}

		// Always return invalid credentials (don't leak user existence)
		return nil, lib.ErrInvalidCredentials
	}

	// Verify password
	valid, err := as.VerifyPassword(authRequest.Password, user.PasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash",
			gecho.Field("error", err),
			gecho.Field("user_id", user.Id),
		)
		return nil, err
	}
	if !valid {
		as.logger.Debug("Invalid password attempt",
			gecho.Field("identifier", authRequest.Email),
			gecho.Field("user_id", user.Id),
		)
		return nil, lib.ErrInvalidCredentials
	}

	elapsedTime := time.Since(startTime)
	as.logger.Debug("User logged in successfully", gecho.Field("user_id", user.Id), gecho.Field("elapsed_time_ms", elapsedTime.Milliseconds()))

	// Remove password hash before returning user
	user.PasswordHash = ""

	// Set user in cache
	cacheErr := as.cacheService.SetUserInCache(user)
	if cacheErr != nil {
		as.logger.Warn("Failed to set user in cache after login", gecho.Field("error", cacheErr), gecho.Field("user_id", user.Id))
	}

	return user, nil
}

// HashPassword hashes a plain-text password with the configured cost parameters
func (as *AuthService) HashPassword(password string) (string, error) {
	return lib.HashPassword(password, as.cfg.Auth.Argon)
}

// VerifyPassword verifies a plain-text password against a stored hash
func (as *AuthService) VerifyPassword(password, hashedPassword string) (bool, error) {
	return lib.VerifyPassword(password, hashedPassword)
}

// GenerateAccessToken generates a JWT access token for the given user
func (as *AuthService) GenerateAccessToken(user *tables.User) (string, error) {
	secret := as.cfg.Auth.AccessTokenSecret

	now := time.Now()
	exp := as.GetAccessTokenExpiration()

	claims := &structs.AuthClaims{
		Sub:   user.Id,
		Email: user.Email,
		Role:  user.Role,
		Iat:   now,
		Exp:   exp,
		Jti:   uuid.New(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.Sub.String(),
		"email": claims.Email,
		"role":  claims.Role,
		"iat":   claims.Iat.Unix(),
		"exp":   claims.Exp.Unix(),
		"jti":   claims.Jti.String(),
	})
	return token.SignedString([]byte(secret))
}

// GetAccessTokenExpiration returns the expiration time for access tokens
func (as *AuthService) GetAccessTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.AccessTokenExpiry)
}

func (as *AuthService) GetUserByID(userId uuid.UUID) (*tables.User, error) {
	// Try to get user from cache first
	cachedUser, err := as.cacheService.GetUserFromCache(userId)
	if err != nil {
		as.logger.Warn("Failed to get user from cache", gecho.Field("error", err), gecho.Field("user_id", userId))
	} else if cachedUser != nil {
		as.logger.Debug("User retrieved from cache", gecho.Field("user_id", userId))
		return cachedUser, nil
	}

	// Cache miss - fetch user from database
	user := &tables.User{}
	err = database.WithRetry(context.Background(), func() error {
		return as.db.NewSelect().
			Model(user).
			Where("id = ?", userId).
			Scan(context.Background())
	})
	if err != nil {
		as.logger.Error("Failed to find user by ID", gecho.Field("error", err), gecho.Field("user_id", userId))
		return nil, lib.MapPgError(err)
	}

	// Cache the user asynchronously
	go func() {
		if err := as.cacheService.SetUserInCache(user); err != nil {
			as.logger.Warn("Failed to cache user after DB fetch", gecho.Field("error", err), gecho.Field("user_id", userId))
		}
	}()

	return user, nil
}

func (as *AuthService) GetAccessTokenSecret() string {
	secret := as.cfg.Auth.AccessTokenSecret
	return secret
}

func (as *AuthService) UpdateLastLogin(userId uuid.UUID) error {
	_, err := as.db.NewUpdate().
		Model((*tables.User)(nil)).
		Set("last_login = ?", time.Now()).
		Where("id = ?", userId).
		Exec(context.Background())
	if err != nil {
		return lib.MapPgError(err)
	}
	return nil
}

// IsTokenBlacklisted reports whether a token's jti has been revoked
func (as *AuthService) IsTokenBlacklisted(jti uuid.UUID) (bool, error) {
	return as.cacheService.IsTokenBlacklisted(jti)
}
