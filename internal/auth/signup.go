package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/emergency"
	"HealthCompanion/internal/utility"

	emailverifier "github.com/AfterShip/email-verifier"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Email    string  `json:"email" validate:"required,email,max=254"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Name     string  `json:"name" validate:"required,max=100"`
	Age      *int32  `json:"age" validate:"omitempty,min=0,max=130"`
	Sex      *string `json:"sex" validate:"omitempty,oneof=male female other"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type emailVerificationResult struct {
	valid   bool
	message string
}

var (
	verifier   = emailverifier.NewVerifier().EnableDomainSuggest()
	emailCache = expirable.NewLRU[string, emailVerificationResult](10000, nil, 24*time.Hour)

	// verifyEmail checks deliverability; replaced in tests.
	verifyEmail = verifyEmailAddressWithCache
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func verifyEmailAddress(email string) (bool, string, error) {
	ret, err := verifier.Verify(email)
	if err != nil {
		return false, "", err
	}

	if !ret.Syntax.Valid {
		return false, "Invalid email address format.", nil
	}
	if ret.Disposable {
		return false, "Disposable email addresses are not allowed.", nil
	}
	if ret.Reachable == "no" {
		msg := "This email address cannot receive mail."
		if ret.Suggestion != "" {
			msg += " Did you mean " + ret.Syntax.Username + "@" + ret.Suggestion + "?"
		}
		return false, msg, nil
	}
	if ret.RoleAccount {
		log.Warn().Str("email", email).Msg("Role account used for signup")
	}
	return true, "", nil
}

func verifyEmailAddressWithCache(email string) (bool, string, error) {
	if cached, ok := emailCache.Get(email); ok {
		return cached.valid, cached.message, nil
	}

	valid, message, err := verifyEmailAddress(email)
	if err == nil {
		emailCache.Add(email, emailVerificationResult{valid: valid, message: message})
	}
	return valid, message, err
}

// SignupHandler registers an email/password account and signs it in.
func SignupHandler(c echo.Context) error {
	ctx := c.Request().Context()
	logger := utility.Logger(c)

	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	req.Email = normalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": utility.ValidationMessage(err)})
	}

	valid, message, err := verifyEmail(req.Email)
	if err != nil {
		logger.Warn().Err(err).Str("email", req.Email).Msg("Email verification unavailable, continuing")
	} else if !valid {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
	}

	exists, err := queries.CheckEmailExists(ctx, req.Email)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to check email")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create account"})
	}
	if exists {
		return c.JSON(http.StatusConflict, map[string]string{"error": "An account with this email already exists"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create account"})
	}
	token, err := emergency.NewToken()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate emergency token")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create account"})
	}

	user, err := queries.CreateUser(ctx, database.CreateUserParams{
		UserID:         uuid.New().String(),
		Email:          req.Email,
		PasswordHash:   utility.TextFromString(string(hash)),
		Name:           utility.TextFromString(req.Name),
		Age:            utility.Int4FromPtr(req.Age),
		Sex:            utility.TextFromPtr(req.Sex),
		EmergencyToken: token,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "An account with this email already exists"})
		}
		logger.Error().Err(err).Msg("Failed to create user")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create account"})
	}

	resp, err := issueSession(c, &user)
	if err != nil {
		logger.Error().Err(err).Str("user_id", user.UserID).Msg("Failed to issue session after signup")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Account created, please sign in"})
	}

	logger.Info().Str("user_id", user.UserID).Msg("User signed up")
	return c.JSON(http.StatusCreated, resp)
}

var errBadCredentials = errors.New("invalid email or password")

// LoginHandler signs in with email and password. Attempts are limited per
// client IP and every failure takes a similar amount of time.
func LoginHandler(c echo.Context) error {
	ctx := c.Request().Context()
	logger := utility.Logger(c)
	ip := utility.GetRealIP(c)

	if err := utility.LoginLimiter.Allow(ip); err != nil {
		logger.Warn().Str("ip", ip).Msg("Login rate limit reached")
		return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Too many login attempts, please try again later"})
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email and password are required"})
	}

	user, err := authenticate(c, normalizeEmail(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, errBadCredentials) {
			utility.AddRandomDelay()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
		}
		logger.Error().Err(err).Msg("Failed to load user for login")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to sign in"})
	}

	if err := queries.UpdateUserLastLogin(ctx, user.UserID); err != nil {
		logger.Warn().Err(err).Msg("Failed to record last login")
	}

	resp, err := issueSession(c, &user)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to issue session")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to sign in"})
	}

	utility.LoginLimiter.Reset(ip)
	logger.Info().Str("user_id", user.UserID).Msg("User logged in")
	return c.JSON(http.StatusOK, resp)
}

func authenticate(c echo.Context, email, password string) (database.User, error) {
	user, err := queries.GetUserByEmail(c.Request().Context(), email)
	if err != nil {
		if database.IsNotFound(err) {
			return user, errBadCredentials
		}
		return user, err
	}
	// Accounts created through Google have no password.
	if !user.PasswordHash.Valid {
		return user, errBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash.String), []byte(password)); err != nil {
		return user, errBadCredentials
	}
	return user, nil
}
