/*
Package emergency serves the emergency medical ID: the owner's profile and
contacts, and the public card that first responders reach through a QR code.
The card is addressed by a random token the owner can rotate at any time.
*/
package emergency

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"net/http"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/utility"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/labstack/echo/v4"
)

const (
	tokenBytes = 16
	qrSize     = 320
	cardLimit  = 3
)

var (
	store  database.Store
	appURL string
)

func InitEmergencyPackage(s database.Store, baseURL string) {
	store = s
	appURL = baseURL
}

// NewToken returns a fresh card token.
func NewToken() (string, error) {
	return utility.GenerateSecureToken(tokenBytes)
}

// CardURL is the public address of the card for token.
func CardURL(token string) string {
	return appURL + "/emergency/" + token
}

type Profile struct {
	BloodType  *string  `json:"blood_type"`
	Conditions []string `json:"conditions"`
	Allergies  []string `json:"allergies"`
}

type ProfileResponse struct {
	Profile        Profile `json:"profile"`
	EmergencyToken string  `json:"emergency_token"`
	CardURL        string  `json:"card_url"`
}

type CreateContactRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Relationship string `json:"relationship" validate:"required,max=100"`
	Phone        string `json:"phone" validate:"required,max=40"`
	Email        string `json:"email" validate:"omitempty,email"`
	IsPrimary    bool   `json:"is_primary"`
}

func GetProfileHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	user, err := store.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		if database.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		utility.Logger(c).Error().Err(err).Msg("Failed to load emergency profile")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load emergency profile"})
	}

	p := Profile{Conditions: user.Conditions, Allergies: user.Allergies}
	if user.BloodType.Valid {
		p.BloodType = &user.BloodType.String
	}
	if p.Conditions == nil {
		p.Conditions = []string{}
	}
	if p.Allergies == nil {
		p.Allergies = []string{}
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		Profile:        p,
		EmergencyToken: user.EmergencyToken,
		CardURL:        CardURL(user.EmergencyToken),
	})
}

func GetContactsHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	contacts, err := store.ListEmergencyContacts(c.Request().Context(), userID)
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch emergency contacts")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch emergency contacts"})
	}
	if contacts == nil {
		contacts = []database.EmergencyContact{}
	}
	return c.JSON(http.StatusOK, contacts)
}

// CreateContactHandler adds a contact. A new primary contact demotes the
// previous one in the same transaction.
func CreateContactHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var req CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": utility.ValidationMessage(err)})
	}

	ctx := c.Request().Context()
	var contact database.EmergencyContact
	err = store.ExecTx(ctx, func(q database.Querier) (err error) {
		if req.IsPrimary {
			if err := q.UnsetPrimaryEmergencyContacts(ctx, userID); err != nil {
				return err
			}
		}
		contact, err = q.CreateEmergencyContact(ctx, database.CreateEmergencyContactParams{
			UserID:       userID,
			Name:         req.Name,
			Relationship: req.Relationship,
			Phone:        req.Phone,
			Email:        utility.TextFromString(req.Email),
			IsPrimary:    req.IsPrimary,
		})
		return err
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to create emergency contact")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create emergency contact"})
	}

	utility.Dashboards.Notify(userID, "contacts.changed")
	return c.JSON(http.StatusCreated, contact)
}

// DeleteContactHandler removes a contact. Another user's contact is
// reported as missing.
func DeleteContactHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	ctx := c.Request().Context()

	id, err := utility.StringToPgtypeUUID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Contact not found"})
	}
	contact, err := store.GetEmergencyContact(ctx, id)
	if err != nil && !database.IsNotFound(err) {
		utility.Logger(c).Error().Err(err).Msg("Failed to load emergency contact")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete contact"})
	}
	if err != nil || contact.UserID != userID {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Contact not found"})
	}

	if err := store.DeleteEmergencyContact(ctx, id); err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to delete emergency contact")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete contact"})
	}

	utility.Dashboards.Notify(userID, "contacts.changed")
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// RotateTokenHandler issues a new card token. Links and QR codes carrying
// the old token stop resolving immediately.
func RotateTokenHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	token, err := NewToken()
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to generate emergency token")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to rotate token"})
	}

	saved, err := store.UpdateEmergencyToken(c.Request().Context(), database.UpdateEmergencyTokenParams{
		UserID:         userID,
		EmergencyToken: token,
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to save emergency token")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to rotate token"})
	}

	utility.Logger(c).Info().Str("user_id", userID).Msg("Emergency card token rotated")
	return c.JSON(http.StatusOK, map[string]string{
		"emergency_token": saved,
		"card_url":        CardURL(saved),
	})
}

// GetQRCodeHandler renders the card URL as a PNG QR code.
func GetQRCodeHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	user, err := store.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to load user for QR code")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate QR code"})
	}

	img, err := QRCode(CardURL(user.EmergencyToken))
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to encode QR code")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate QR code"})
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.Blob(http.StatusOK, "image/png", img)
}

// QRCode encodes content as a square PNG.
func QRCode(content string) ([]byte, error) {
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, err
	}
	code, err = barcode.Scale(code, qrSize, qrSize)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var errCardNotFound = errors.New("emergency card not found")

// loadCard gathers what the public card shows for token.
func loadCard(ctx context.Context, token string) (Card, error) {
	if token == "" {
		return Card{}, errCardNotFound
	}
	user, err := store.GetUserByEmergencyToken(ctx, token)
	if err != nil {
		if database.IsNotFound(err) {
			return Card{}, errCardNotFound
		}
		return Card{}, err
	}

	contacts, err := store.ListTopEmergencyContacts(ctx, database.ListTopEmergencyContactsParams{
		UserID: user.UserID,
		Limit:  cardLimit,
	})
	if err != nil {
		return Card{}, err
	}
	meds, err := store.ListActiveMedications(ctx, user.UserID)
	if err != nil {
		return Card{}, err
	}
	return newCard(user, contacts, meds), nil
}

// CardPageHandler is the public, unauthenticated card page.
func CardPageHandler(c echo.Context) error {
	card, err := loadCard(c.Request().Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, errCardNotFound) {
			return c.HTML(http.StatusNotFound, notFoundPage)
		}
		utility.Logger(c).Error().Err(err).Msg("Failed to load emergency card")
		return c.HTML(http.StatusInternalServerError, "<h1>Something went wrong</h1>")
	}

	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, card); err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to render emergency card")
		return c.HTML(http.StatusInternalServerError, "<h1>Something went wrong</h1>")
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	c.Response().Header().Set("X-Robots-Tag", "noindex")
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
