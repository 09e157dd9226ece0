package auth

import (
	"context"
	"net/http"
	"sync"
	"time"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/mailer"
	"HealthCompanion/internal/utility"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const (
	ResetCodeTTL        = 10 * time.Minute
	ResetResendCooldown = 1 * time.Minute
	MaxResetAttempts    = 5
)

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// resetEntry is a pending password reset, keyed by email.
type resetEntry struct {
	UserID      string
	Secret      string
	GeneratedAt time.Time
	Attempts    int
}

var (
	resetCodes = expirable.NewLRU[string, *resetEntry](10000, nil, ResetCodeTTL)
	resetMu    sync.Mutex

	resetOpts = totp.ValidateOpts{
		Period:    uint(ResetCodeTTL.Seconds()),
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
)

const forgotPasswordReply = "If an account exists for this email, a reset code has been sent."

// newResetCode creates a TOTP secret for email and the code valid now.
func newResetCode(email string) (secret, code string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "HealthCompanion",
		AccountName: email,
		Period:      resetOpts.Period,
		SecretSize:  32,
		Digits:      resetOpts.Digits,
		Algorithm:   resetOpts.Algorithm,
	})
	if err != nil {
		return "", "", err
	}
	code, err = totp.GenerateCodeCustom(key.Secret(), now(), resetOpts)
	if err != nil {
		return "", "", err
	}
	return key.Secret(), code, nil
}

// ForgotPasswordHandler emails a reset code. The reply is the same whether
// or not the account exists.
func ForgotPasswordHandler(c echo.Context) error {
	logger := utility.Logger(c)

	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	req.Email = normalizeEmail(req.Email)
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": utility.ValidationMessage(err)})
	}
	accepted := map[string]string{"message": forgotPasswordReply}

	user, err := queries.GetUserByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if !database.IsNotFound(err) {
			logger.Error().Err(err).Msg("Failed to look up user for password reset")
		}
		utility.AddRandomDelay()
		return c.JSON(http.StatusAccepted, accepted)
	}

	resetMu.Lock()
	if prev, ok := resetCodes.Peek(req.Email); ok && now().Sub(prev.GeneratedAt) < ResetResendCooldown {
		resetMu.Unlock()
		return c.JSON(http.StatusAccepted, accepted)
	}
	secret, code, err := newResetCode(req.Email)
	if err != nil {
		resetMu.Unlock()
		logger.Error().Err(err).Msg("Failed to generate reset code")
		return c.JSON(http.StatusAccepted, accepted)
	}
	resetCodes.Add(req.Email, &resetEntry{UserID: user.UserID, Secret: secret, GeneratedAt: now()})
	resetMu.Unlock()

	go sendResetCode(context.WithoutCancel(c.Request().Context()), *logger, req.Email, code)
	return c.JSON(http.StatusAccepted, accepted)
}

func sendResetCode(ctx context.Context, logger zerolog.Logger, email, code string) {
	if mail == nil {
		logger.Warn().Str("email", email).Msg("SMTP not configured, reset code not sent")
		return
	}
	msg, err := mailer.PasswordReset(email, code, ResetCodeTTL)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to render reset email")
		return
	}
	if err := mail.Send(ctx, msg); err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Failed to send reset email")
		return
	}
	logger.Info().Str("email", email).Msg("Password reset code sent")
}

// checkResetCode consumes one attempt and reports whether code is valid.
// The entry is dropped on success or once attempts run out.
func checkResetCode(email, code string) (userID string, ok bool, exhausted bool) {
	resetMu.Lock()
	defer resetMu.Unlock()

	entry, found := resetCodes.Get(email)
	if !found {
		return "", false, false
	}
	if entry.Attempts >= MaxResetAttempts {
		resetCodes.Remove(email)
		return "", false, true
	}
	entry.Attempts++

	valid, err := totp.ValidateCustom(code, entry.Secret, now(), resetOpts)
	if err == nil && valid {
		resetCodes.Remove(email)
		return entry.UserID, true, false
	}
	if entry.Attempts >= MaxResetAttempts {
		resetCodes.Remove(email)
		return "", false, true
	}
	return "", false, false
}

// ResetPasswordHandler sets a new password with a code from
// ForgotPasswordHandler and signs out every existing session.
func ResetPasswordHandler(c echo.Context) error {
	ctx := c.Request().Context()
	logger := utility.Logger(c)

	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	req.Email = normalizeEmail(req.Email)
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": utility.ValidationMessage(err)})
	}

	userID, ok, exhausted := checkResetCode(req.Email, req.Code)
	if exhausted {
		return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Too many attempts, please request a new code"})
	}
	if !ok {
		utility.AddRandomDelay()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid or expired code"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to reset password"})
	}
	if err := queries.UpdateUserPassword(ctx, database.UpdateUserPasswordParams{
		UserID:       userID,
		PasswordHash: utility.TextFromString(string(hash)),
	}); err != nil {
		logger.Error().Err(err).Msg("Failed to update password")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to reset password"})
	}
	if err := queries.RevokeAllUserRefreshTokens(ctx, userID); err != nil {
		logger.Error().Err(err).Msg("Failed to revoke sessions after password reset")
	}

	logger.Info().Str("user_id", userID).Msg("Password reset")
	return c.JSON(http.StatusOK, map[string]string{"message": "Password has been reset. Please sign in."})
}
