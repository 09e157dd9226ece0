package auth

import (
	"net/http"

	"HealthCompanion/internal/config"
	"HealthCompanion/internal/database"
	"HealthCompanion/internal/emergency"
	"HealthCompanion/internal/utility"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
	"github.com/rs/zerolog/log"
)

// oauthSessionMaxAge bounds the handshake between redirect and callback.
const oauthSessionMaxAge = 600

var afterLoginURL string

func initGoogle(cfg *config.Config) {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.MaxAge(oauthSessionMaxAge)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = cfg.IsProduction()
	store.Options.SameSite = http.SameSiteLaxMode
	gothic.Store = store

	callbackURL := cfg.AppURL + "/auth/google/callback"
	goth.UseProviders(google.New(cfg.OAuth.GoogleClientID, cfg.OAuth.GoogleClientSecret, callbackURL, "email", "profile"))
	afterLoginURL = cfg.AppURL + "/dashboard"

	log.Info().Str("callback", callbackURL).Msg("Google sign-in enabled")
}

// withProvider exposes the :provider path segment to gothic.
func withProvider(c echo.Context) *http.Request {
	req := c.Request()
	q := req.URL.Query()
	q.Set("provider", c.Param("provider"))
	req.URL.RawQuery = q.Encode()
	return req
}

func ProviderHandler(c echo.Context) error {
	req := withProvider(c)
	if gothUser, err := gothic.CompleteUserAuth(c.Response(), req); err == nil {
		return finishOAuth(c, gothUser)
	}
	gothic.BeginAuthHandler(c.Response(), req)
	return nil
}

func CallbackHandler(c echo.Context) error {
	gothUser, err := gothic.CompleteUserAuth(c.Response(), withProvider(c))
	if err != nil {
		utility.Logger(c).Warn().Err(err).Str("provider", c.Param("provider")).Msg("OAuth completion failed")
		return c.Redirect(http.StatusTemporaryRedirect, "/login?error=oauth")
	}
	return finishOAuth(c, gothUser)
}

// finishOAuth links the provider identity to a user, creating one on first
// sign-in, and starts a session.
func finishOAuth(c echo.Context, gothUser goth.User) error {
	logger := utility.Logger(c)

	token, err := emergency.NewToken()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate emergency token")
		return c.String(http.StatusInternalServerError, "Error saving user data")
	}

	user, err := queries.UpsertOAuthUser(c.Request().Context(), database.UpsertOAuthUserParams{
		UserID:         uuid.New().String(),
		Email:          normalizeEmail(gothUser.Email),
		Name:           utility.TextFromString(gothUser.Name),
		AvatarUrl:      utility.TextFromString(gothUser.AvatarURL),
		Provider:       utility.TextFromString(gothUser.Provider),
		ProviderUserID: utility.TextFromString(gothUser.UserID),
		EmergencyToken: token,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to upsert OAuth user")
		return c.String(http.StatusInternalServerError, "Error saving user data")
	}

	if _, err := issueSession(c, &user); err != nil {
		logger.Error().Err(err).Msg("Failed to issue session")
		return c.String(http.StatusInternalServerError, "Error generating tokens")
	}

	logger.Info().Str("user_id", user.UserID).Str("provider", gothUser.Provider).Msg("OAuth user authenticated")
	return c.Redirect(http.StatusTemporaryRedirect, afterLoginURL)
}
