/*
Package auth handles sign-up, sign-in and session tokens.

Access tokens are short-lived HS256 JWTs. Refresh tokens are random strings
stored as sha256 hashes and rotated on every use. Both travel as HttpOnly
cookies for browsers; API clients may send either as a Bearer header.
*/
package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"HealthCompanion/internal/config"
	"HealthCompanion/internal/database"
	"HealthCompanion/internal/mailer"
	"HealthCompanion/internal/utility"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	AccessTokenDuration  = 15 * time.Minute
	RefreshTokenDuration = 30 * 24 * time.Hour

	accessCookie  = "access-token"
	refreshCookie = "refresh-token"
	issuer        = "health-companion"
)

var (
	queries   database.Store
	mail      mailer.Sender
	jwtSecret []byte
	isProd    bool

	now = time.Now
)

// InitAuth wires the package to its store and settings. Google sign-in is
// configured only when both OAuth credentials are present.
func InitAuth(q database.Store, m mailer.Sender, cfg *config.Config) error {
	if cfg.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET environment variable is not set")
	}
	queries = q
	mail = m
	jwtSecret = []byte(cfg.SessionSecret)
	isProd = cfg.IsProduction()

	if isProd {
		verifier.EnableAutoUpdateDisposable()
	}

	if cfg.OAuth.GoogleEnabled() {
		initGoogle(cfg)
	}

	log.Info().
		Str("env", cfg.AppEnv).
		Bool("secure_cookies", isProd).
		Bool("google", cfg.OAuth.GoogleEnabled()).
		Msg("Auth initialized")
	return nil
}

type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

type AuthResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"`
	User         database.User `json:"user"`
}

func generateAccessToken(user *database.User) (string, error) {
	issued := now()
	claims := &JwtCustomClaims{
		UserID: user.UserID,
		Email:  user.Email,
		Name:   user.Name.String,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issued.Add(AccessTokenDuration)),
			IssuedAt:  jwt.NewNumericDate(issued),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// parseAccessToken validates a token and returns its claims.
func parseAccessToken(tokenString string) (*JwtCustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return base64.URLEncoding.EncodeToString(hash[:])
}

func generateAndStoreRefreshToken(ctx context.Context, q database.Querier, userID string, c echo.Context) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)

	var ipAddr *netip.Addr
	if ip, err := netip.ParseAddr(utility.GetRealIP(c)); err == nil {
		ipAddr = &ip
	}
	deviceInfo := c.Request().UserAgent()

	_, err := q.CreateRefreshToken(ctx, database.CreateRefreshTokenParams{
		UserID:     userID,
		TokenHash:  hashToken(token),
		DeviceInfo: pgtype.Text{String: deviceInfo, Valid: deviceInfo != ""},
		IpAddress:  ipAddr,
		ExpiresAt:  utility.Timestamptz(now().Add(RefreshTokenDuration)),
	})
	if err != nil {
		return "", fmt.Errorf("store refresh token: %w", err)
	}
	return token, nil
}

var errInvalidRefreshToken = errors.New("invalid or expired refresh token")

// useRefreshToken exchanges a refresh token for a new one. The old token is
// claimed and its replacement stored in one transaction, so of two requests
// racing on the same token only one succeeds.
func useRefreshToken(ctx context.Context, token string, c echo.Context) (*database.User, string, error) {
	var (
		user     database.User
		newToken string
	)
	err := queries.ExecTx(ctx, func(q database.Querier) error {
		rt, err := q.ClaimRefreshToken(ctx, hashToken(token))
		if err != nil {
			if database.IsNotFound(err) {
				return errInvalidRefreshToken
			}
			return err
		}

		user, err = q.GetUserByID(ctx, rt.UserID)
		if err != nil {
			if database.IsNotFound(err) {
				return errInvalidRefreshToken
			}
			return err
		}

		newToken, err = generateAndStoreRefreshToken(ctx, q, rt.UserID, c)
		return err
	})
	if err != nil {
		return nil, "", err
	}
	return &user, newToken, nil
}

// issueSession creates both tokens, sets the cookies and returns the body
// sent to the client.
func issueSession(c echo.Context, user *database.User) (*AuthResponse, error) {
	accessToken, err := generateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := generateAndStoreRefreshToken(c.Request().Context(), queries, user.UserID, c)
	if err != nil {
		return nil, err
	}

	setAuthCookies(c, accessToken, refreshToken)
	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(AccessTokenDuration.Seconds()),
		User:         *user,
	}, nil
}

func newCookie(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Expires:  expires,
		Path:     "/",
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	}
}

func setAuthCookies(c echo.Context, accessToken, refreshToken string) {
	c.SetCookie(newCookie(accessCookie, accessToken, now().Add(AccessTokenDuration)))
	c.SetCookie(newCookie(refreshCookie, refreshToken, now().Add(RefreshTokenDuration)))
}

func clearAuthCookies(c echo.Context) {
	for _, name := range []string{accessCookie, refreshCookie} {
		cookie := newCookie(name, "", time.Unix(0, 0))
		cookie.MaxAge = -1
		c.SetCookie(cookie)
	}
}

// bearerOrCookie reads a token from the Authorization header, falling back
// to the named cookie.
func bearerOrCookie(c echo.Context, cookieName string) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// JwtAuthMiddleware rejects requests without a valid access token and puts
// the caller's id and record on the context.
func JwtAuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := bearerOrCookie(c, accessCookie)
		if tokenString == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}

		claims, err := parseAccessToken(tokenString)
		if err != nil {
			utility.Logger(c).Debug().Err(err).Msg("Rejected access token")
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		user, err := queries.GetUserByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if database.IsNotFound(err) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User not found"})
			}
			utility.Logger(c).Error().Err(err).Msg("Failed to load user for token")
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		}

		c.Set("user", &user)
		c.Set("user_id", user.UserID)
		scoped := utility.Logger(c).With().Str("user_id", user.UserID).Logger()
		c.Set("logger", &scoped)
		return next(c)
	}
}

func RefreshHandler(c echo.Context) error {
	refreshToken := bearerOrCookie(c, refreshCookie)
	if refreshToken == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "No refresh token provided"})
	}

	user, newRefreshToken, err := useRefreshToken(c.Request().Context(), refreshToken, c)
	if err != nil {
		if errors.Is(err, errInvalidRefreshToken) {
			clearAuthCookies(c)
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired refresh token"})
		}
		utility.Logger(c).Error().Err(err).Msg("Failed to rotate refresh token")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to refresh session"})
	}

	accessToken, err := generateAccessToken(user)
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to generate access token")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to refresh session"})
	}

	setAuthCookies(c, accessToken, newRefreshToken)
	return c.JSON(http.StatusOK, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(AccessTokenDuration.Seconds()),
		User:         *user,
	})
}

// LogoutHandler revokes every refresh token of the caller and clears the
// cookies. It succeeds even for an anonymous caller.
func LogoutHandler(c echo.Context) error {
	userID := callerID(c)
	if userID != "" {
		if err := queries.RevokeAllUserRefreshTokens(c.Request().Context(), userID); err != nil {
			utility.Logger(c).Error().Err(err).Msg("Failed to revoke refresh tokens")
		}
	}

	clearAuthCookies(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// callerID identifies the caller from the access token when present, or
// from the refresh token otherwise, so an expired session can still log out.
func callerID(c echo.Context) string {
	if id, err := utility.GetUserIDFromContext(c); err == nil {
		return id
	}
	if claims, err := parseAccessToken(bearerOrCookie(c, accessCookie)); err == nil {
		return claims.UserID
	}
	if cookie, err := c.Cookie(refreshCookie); err == nil && cookie.Value != "" {
		if rt, err := queries.GetRefreshTokenByHash(c.Request().Context(), hashToken(cookie.Value)); err == nil {
			return rt.UserID
		}
	}
	return ""
}
