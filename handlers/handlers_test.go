package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	profileRepo "localserve/database/repository/profile"
	"localserve/models"
	"localserve/services/booking"
	"localserve/services/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func perform(router *gin.Engine, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("malformed response body %q: %v", w.Body.String(), err)
	}
	return out
}

// stubProfileService lets each test pick the service outcome.
type stubProfileService struct {
	createErr error
	getErr    error
	attachErr error
}

func (s *stubProfileService) CreateProfile(input models.UserProfileCreate) (*models.UserProfile, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.UserProfile{ID: "p1", Email: input.Email}, nil
}

func (s *stubProfileService) GetProfile(id string) (*models.UserProfile, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &models.UserProfile{ID: id}, nil
}

func (s *stubProfileService) ListProfiles() ([]models.UserProfile, error) {
	return []models.UserProfile{}, nil
}

func (s *stubProfileService) UpdateProfile(id string, update models.UserProfileUpdate) (*models.UserProfile, error) {
	return nil, profileRepo.ErrNotFound
}

func (s *stubProfileService) DeleteProfile(id string) error {
	return profileRepo.ErrNotFound
}

func (s *stubProfileService) AttachImage(id, contentType string, data []byte) (string, error) {
	if s.attachErr != nil {
		return "", s.attachErr
	}
	return "data:image/png;base64,", nil
}

func marketplaceRouter() (*gin.Engine, *booking.Store) {
	store := booking.NewStore(booking.WithoutSeedEarnings())
	logger := zap.NewNop()

	bookingHandler := NewBookingHandler(store, logger)
	providerHandler := NewProviderHandler(store, logger)
	paymentHandler := NewPaymentHandler(store, logger)

	router := gin.New()
	router.GET("/api/provider/:id", providerHandler.GetProvider)
	router.GET("/api/consumer/check-status/:id", bookingHandler.CheckStatus)
	router.POST("/api/booking/request", bookingHandler.CreateRequest)
	router.GET("/api/payment/receipt/:id", paymentHandler.GetReceipt)
	return router, store
}

func profileRouter(svc profile.ProfileService) *gin.Engine {
	h := NewProfileHandler(svc, nil, zap.NewNop())

	router := gin.New()
	router.POST("/api/profiles", h.CreateProfile)
	router.GET("/api/profiles/:id", h.GetProfile)
	router.POST("/api/profiles/:id/image", h.UploadImage)
	return router
}

func TestCheckStatus_UnknownIDReportsNotFoundStatus(t *testing.T) {
	router, _ := marketplaceRouter()

	w := perform(router, http.MethodGet, "/api/consumer/check-status/42", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "not_found" {
		t.Fatalf("expected status not_found, got %v", body["status"])
	}
}

func TestCheckStatus_PendingRequest(t *testing.T) {
	router, store := marketplaceRouter()
	req := store.Create(models.BookingInput{ProviderID: 1})

	w := perform(router, http.MethodGet, "/api/consumer/check-status/1", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != models.StatusPending {
		t.Fatalf("expected pending for request %d, got %v", req.ID, body["status"])
	}
}

func TestGetProvider(t *testing.T) {
	router, _ := marketplaceRouter()

	t.Run("known id", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/api/provider/1", nil, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["name"] != "John's Electricals" {
			t.Fatalf("unexpected provider %v", body["name"])
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/api/provider/99", nil, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["error"] != "Provider not found" {
			t.Fatalf("unexpected error %v", body["error"])
		}
	})
}

func TestGetReceipt_UnpaidRequestIs404(t *testing.T) {
	router, store := marketplaceRouter()
	store.Create(models.BookingInput{ProviderID: 1})

	w := perform(router, http.MethodGet, "/api/payment/receipt/1", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCreateBooking_MalformedJSONIs400(t *testing.T) {
	router, _ := marketplaceRouter()

	w := perform(router, http.MethodPost, "/api/booking/request",
		strings.NewReader("{not json"), "application/json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateProfile_DuplicateEmailIs400(t *testing.T) {
	router := profileRouter(&stubProfileService{createErr: profile.ErrDuplicateEmail})

	payload := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com"}`
	w := perform(router, http.MethodPost, "/api/profiles",
		strings.NewReader(payload), "application/json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != profile.ErrDuplicateEmail.Error() {
		t.Fatalf("unexpected error %v", body["error"])
	}
}

func TestGetProfile_MissingIDIs404(t *testing.T) {
	router := profileRouter(&stubProfileService{getErr: profileRepo.ErrNotFound})

	w := perform(router, http.MethodGet, "/api/profiles/missing", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Profile not found" {
		t.Fatalf("unexpected error %v", body["error"])
	}
}

func TestUploadImage_NonImageIs400(t *testing.T) {
	router := profileRouter(&stubProfileService{attachErr: profile.ErrNotAnImage})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "notes.txt")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	fw.Write([]byte("plain text"))
	mw.Close()

	w := perform(router, http.MethodPost, "/api/profiles/p1/image", &buf, mw.FormDataContentType())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != profile.ErrNotAnImage.Error() {
		t.Fatalf("unexpected error %v", body["error"])
	}
}
