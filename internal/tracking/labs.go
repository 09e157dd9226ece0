package tracking

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"HealthCompanion/internal/database"
	"HealthCompanion/internal/geminiservice"
	"HealthCompanion/internal/utility"

	"github.com/labstack/echo/v4"
)

// MaxLabFileSize caps uploads and extraction input.
const MaxLabFileSize = 10 << 20

// labExtensions are the report formats accepted. Uploads are served from
// the API origin, so anything a browser would render as markup stays out.
var labExtensions = map[string]bool{".pdf": true, ".png": true, ".jpg": true, ".jpeg": true}

type CreateLabResultRequest struct {
	TestName string  `json:"test_name" validate:"required,max=200"`
	TestDate string  `json:"test_date" validate:"required"`
	Result   string  `json:"result" validate:"max=10000"`
	FileURL  *string `json:"file_url" validate:"omitempty,max=500"`
	Provider *string `json:"provider" validate:"omitempty,max=200"`
	Notes    *string `json:"notes" validate:"omitempty,max=2000"`
	Flagged  *bool   `json:"flagged"`
}

func GetLabResultsHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	labs, err := store.ListLabResults(c.Request().Context(), userID)
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to fetch lab results")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch lab results"})
	}
	return c.JSON(http.StatusOK, orEmpty(labs))
}

func CreateLabResultHandler(c echo.Context) error {
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CreateLabResultRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	testDate, ok, err := parseTime(c, "test_date", req.TestDate)
	if !ok {
		return err
	}

	lab, err := store.CreateLabResult(c.Request().Context(), database.CreateLabResultParams{
		UserID:   userID,
		TestName: req.TestName,
		TestDate: testDate,
		Result:   req.Result,
		FileUrl:  utility.TextFromPtr(req.FileURL),
		Provider: utility.TextFromPtr(req.Provider),
		Notes:    utility.TextFromPtr(req.Notes),
		Flagged:  req.Flagged != nil && *req.Flagged,
	})
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to create lab result")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create lab result"})
	}

	utility.Dashboards.Notify(userID, "labs.changed")
	return c.JSON(http.StatusCreated, lab)
}

func DeleteLabResultHandler(c echo.Context) error {
	return deleteOwned(c, deletion[database.LabResult]{
		noun:  "Lab result",
		event: "labs.changed",
		get:   store.GetLabResult,
		del:   store.DeleteLabResult,
		owner: func(l database.LabResult) string { return l.UserID },
	})
}

// labFile pulls the "file" part off the form, writing a 400 when it is
// missing, too large or not an accepted format.
func labFile(c echo.Context) (*multipart.FileHeader, bool, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, false, c.JSON(http.StatusBadRequest, map[string]string{"error": "No file provided"})
	}
	if fh.Size > MaxLabFileSize {
		return nil, false, c.JSON(http.StatusBadRequest, map[string]string{"error": "File exceeds 10MB limit"})
	}
	if !labExtensions[strings.ToLower(filepath.Ext(fh.Filename))] {
		return nil, false, c.JSON(http.StatusBadRequest, map[string]string{"error": "File must be a PDF, PNG or JPEG"})
	}
	return fh, true, nil
}

// UploadLabFileHandler stores the report under a random name and returns
// the public URL it is served from.
func UploadLabFileHandler(c echo.Context) error {
	if _, err := utility.GetUserIDFromContext(c); err != nil {
		return unauthorized(c)
	}

	fh, ok, err := labFile(c)
	if !ok {
		return err
	}

	name, err := saveUpload(fh, filepath.Join(uploadDir, "labs"))
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to save lab upload")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to upload file"})
	}

	return c.JSON(http.StatusOK, map[string]string{"url": "/uploads/labs/" + name})
}

func saveUpload(fh *multipart.FileHeader, dir string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	token, err := utility.GenerateSecureToken(16)
	if err != nil {
		return "", err
	}
	name := token + strings.ToLower(filepath.Ext(filepath.Base(fh.Filename)))

	dst, err := os.OpenFile(filepath.Join(dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, io.LimitReader(src, MaxLabFileSize)); err != nil {
		dst.Close()
		return "", err
	}
	return name, dst.Close()
}

// LabMeasurement is one analyte read off a report.
type LabMeasurement struct {
	Name           string  `json:"name"`
	Value          string  `json:"value"`
	Unit           *string `json:"unit"`
	ReferenceRange *string `json:"reference_range"`
	Flag           *string `json:"flag"`
}

// LabExtraction is what the vision model reads off a report.
type LabExtraction struct {
	TestName *string          `json:"test_name"`
	TestDate *string          `json:"test_date"`
	Provider *string          `json:"provider"`
	Results  []LabMeasurement `json:"results"`
}

const labExtractionPrompt = `You are a medical data extraction assistant. Analyze the attached lab report and extract the test name, the test date in YYYY-MM-DD format, the lab provider, and every test result with its value, unit, reference range and flag.
Use HIGH or LOW as the flag only when the value is outside the reference range. If a field is not visible, return null. Copy values exactly as printed.`

func nullableString(description string) *geminiservice.GeminiSchema {
	s := geminiservice.String(description)
	s.Nullable = true
	return s
}

var labExtractionSchema = geminiservice.Object(map[string]*geminiservice.GeminiSchema{
	"test_name": nullableString("Name of the lab test, e.g. Complete Blood Count"),
	"test_date": nullableString("Date of the test in YYYY-MM-DD format"),
	"provider":  nullableString("Lab provider name, e.g. Quest Diagnostics"),
	"results": geminiservice.ArrayOf("Every result on the report",
		geminiservice.Object(map[string]*geminiservice.GeminiSchema{
			"name":            geminiservice.String("Test parameter name, e.g. Hemoglobin"),
			"value":           geminiservice.String("Measured value as printed"),
			"unit":            nullableString("Unit of measurement"),
			"reference_range": nullableString("Normal reference range"),
			"flag": func() *geminiservice.GeminiSchema {
				s := geminiservice.Enum("HIGH or LOW when abnormal", "HIGH", "LOW")
				s.Nullable = true
				return s
			}(),
		})),
})

type extractResponse struct {
	Extracted bool `json:"extracted"`
	LabExtraction
}

// ExtractLabDataHandler sends an uploaded report to the vision model and
// returns the structured result for the client to review.
func ExtractLabDataHandler(c echo.Context) error {
	if _, err := utility.GetUserIDFromContext(c); err != nil {
		return unauthorized(c)
	}
	if extractor == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Lab extraction is not configured"})
	}

	fh, ok, err := labFile(c)
	if !ok {
		return err
	}

	raw, mimeType, err := readUpload(fh)
	if err != nil {
		utility.Logger(c).Error().Err(err).Msg("Failed to read lab upload")
		return c.JSON(http.StatusInternalServerError, map[string]any{"extracted": false, "error": "Failed to extract data"})
	}

	var out LabExtraction
	err = extractor.GenerateJSON(c.Request().Context(), geminiservice.Request{
		Prompt: labExtractionPrompt,
		Schema: labExtractionSchema,
		Inline: geminiservice.NewInlineData(mimeType, raw),
	}, &out)
	if err != nil {
		utility.Logger(c).Error().Err(err).Str("file", fh.Filename).Msg("Lab extraction failed")
		return c.JSON(http.StatusInternalServerError, map[string]any{"extracted": false, "error": "Failed to extract data"})
	}
	if out.Results == nil {
		out.Results = []LabMeasurement{}
	}

	return c.JSON(http.StatusOK, extractResponse{Extracted: true, LabExtraction: out})
}

func readUpload(fh *multipart.FileHeader) ([]byte, string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, MaxLabFileSize))
	if err != nil {
		return nil, "", fmt.Errorf("read upload: %w", err)
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(raw)
	}
	return raw, mimeType, nil
}
