package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/padeltour/academia-api/internal/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	RequestID string          `json:"request_id"`
	Page      int64           `json:"page"`
	Limit     int64           `json:"limit"`
	Total     *int64          `json:"total"`
}

func newTestRouter(t *testing.T, rateLimit int) (*gin.Engine, *container.Container) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c := container.NewContainer(zap.NewNop(), container.MemoryStores(), nil, nil, rateLimit)
	return SetupRoutes(c, []string{"*"}), c
}

func seededRouter(t *testing.T) *gin.Engine {
	t.Helper()
	r, c := newTestRouter(t, 1000)
	_, err := c.Seeder.Seed(context.Background())
	require.NoError(t, err)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.7:4242"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func bookingBody(tourID string, participants int) map[string]any {
	return map[string]any{
		"tour_id":      tourID,
		"first_name":   "Анна",
		"last_name":    "Петрова",
		"email":        "anna@example.com",
		"phone":        "+34 600 000 000",
		"country":      "Испания",
		"participants": participants,
	}
}

func TestHealthEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, 10)

	w, _ := do(t, r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w, _ = do(t, r, http.MethodGet, "/api/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "is running")
}

func TestListToursPagination(t *testing.T) {
	r := seededRouter(t)

	w, env := do(t, r, http.MethodGet, "/api/tours", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.EqualValues(t, 1, env.Page)
	assert.EqualValues(t, 100, env.Limit)
	require.NotNil(t, env.Total)
	assert.EqualValues(t, 3, *env.Total)
	assert.Len(t, decode[[]map[string]any](t, env.Data), 3)

	w, env = do(t, r, http.MethodGet, "/api/tours?skip=2&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, env.Page)
	assert.Len(t, decode[[]map[string]any](t, env.Data), 1)

	for _, q := range []string{"limit=0", "limit=101", "skip=-1", "limit=abc"} {
		w, env = do(t, r, http.MethodGet, "/api/tours?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		assert.False(t, env.Success, q)
	}
}

func TestListToursByLevel(t *testing.T) {
	r := seededRouter(t)

	w, env := do(t, r, http.MethodGet, "/api/tours?level=любители-продвинутые", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, env.Data), 2)

	w, _ = do(t, r, http.MethodGet, "/api/tours?level=профи", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTourNotFoundResponses(t *testing.T) {
	r := seededRouter(t)

	w, env := do(t, r, http.MethodGet, "/api/tours/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Tour not found", env.Error)

	w, env = do(t, r, http.MethodPut, "/api/tours/missing", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Tour not found", env.Error)

	w, env = do(t, r, http.MethodDelete, "/api/tours/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Tour not found", env.Error)
}

func TestTourPartialUpdateAndDelete(t *testing.T) {
	r := seededRouter(t)

	w, env := do(t, r, http.MethodPut, "/api/tours/1", map[string]any{"title": "New Name"})
	require.Equal(t, http.StatusOK, w.Code)
	tour := decode[map[string]any](t, env.Data)
	assert.Equal(t, "New Name", tour["title"])
	assert.Equal(t, "от 1900", tour["price"])
	assert.Equal(t, "начинающие-любители", tour["level"])

	w, env = do(t, r, http.MethodDelete, "/api/tours/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tour deleted successfully", env.Message)

	w, _ = do(t, r, http.MethodDelete, "/api/tours/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTourValidationAndConflict(t *testing.T) {
	r := seededRouter(t)

	w, env := do(t, r, http.MethodPost, "/api/tours", map[string]any{"title": "only a title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "validation failed")

	tour := map[string]any{
		"id":            "1",
		"title":         "Дубль",
		"subtitle":      "Тенерифе",
		"dates":         "01.07.25 - 08.07.25",
		"level":         "продвинутые",
		"accommodation": "Без размещения",
		"price":         "от 990",
		"description":   "d",
		"image":         "https://images.example.com/x.jpg",
		"features":      []string{"a"},
		"group_size":    "8-12 человек",
	}
	w, _ = do(t, r, http.MethodPost, "/api/tours", tour)
	assert.Equal(t, http.StatusConflict, w.Code)

	delete(tour, "id")
	w, env = do(t, r, http.MethodPost, "/api/tours", tour)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[map[string]any](t, env.Data)
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "Euro", created["currency"])

	w, _ = do(t, r, http.MethodPost, "/api/tours", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingFlow(t *testing.T) {
	r := seededRouter(t)

	w, env := do(t, r, http.MethodPost, "/api/bookings", bookingBody("missing", 2))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Tour not found", env.Error)

	w, env = do(t, r, http.MethodPost, "/api/bookings", bookingBody("1", 11))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, r, http.MethodPost, "/api/bookings", bookingBody("1", 2))
	require.Equal(t, http.StatusCreated, w.Code)
	booking := decode[map[string]any](t, env.Data)
	assert.Equal(t, 3800.0, booking["total_price"])
	assert.Equal(t, "pending", booking["status"])
	id := booking["id"].(string)

	w, env = do(t, r, http.MethodPut, "/api/bookings/"+id, map[string]any{"participants": 3, "total_price": 1})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5700.0, decode[map[string]any](t, env.Data)["total_price"])

	w, env = do(t, r, http.MethodPut, "/api/bookings/"+id, map[string]any{"tour_id": "3"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2670.0, decode[map[string]any](t, env.Data)["total_price"])

	w, env = do(t, r, http.MethodPut, "/api/bookings/"+id, map[string]any{"tour_id": "gone"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Tour not found", env.Error)

	w, env = do(t, r, http.MethodPut, "/api/bookings/"+id+"/status", map[string]any{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "confirmed", decode[map[string]any](t, env.Data)["status"])

	w, _ = do(t, r, http.MethodPut, "/api/bookings/"+id+"/status", map[string]any{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPut, "/api/bookings/missing/status", map[string]any{"status": "pending"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/bookings/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{
		"total_bookings":     1.0,
		"pending_bookings":   0.0,
		"confirmed_bookings": 1.0,
		"cancelled_bookings": 0.0,
	}, decode[map[string]any](t, env.Data))

	w, env = do(t, r, http.MethodGet, "/api/bookings?status=confirmed&tour_id=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, env.Data), 1)

	w, env = do(t, r, http.MethodGet, "/api/bookings?status=pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]map[string]any](t, env.Data))

	w, _ = do(t, r, http.MethodGet, "/api/bookings?status=archived", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, r, http.MethodDelete, "/api/bookings/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Booking deleted successfully", env.Message)

	w, env = do(t, r, http.MethodGet, "/api/bookings/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", env.Error)
}

func TestTestimonialsApprovedOnlyDefault(t *testing.T) {
	r := seededRouter(t)

	w, env := do(t, r, http.MethodPost, "/api/testimonials", map[string]any{
		"name": "Ольга", "role": "Дизайнер", "content": "Супер!", "rating": 5,
		"image": "https://images.example.com/olga.jpg", "approved": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, false, decode[map[string]any](t, env.Data)["approved"])

	_, env = do(t, r, http.MethodGet, "/api/testimonials", nil)
	assert.EqualValues(t, 3, *env.Total)

	_, env = do(t, r, http.MethodGet, "/api/testimonials?approved_only=false", nil)
	assert.EqualValues(t, 4, *env.Total)

	w, _ = do(t, r, http.MethodGet, "/api/testimonials?approved_only=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/testimonials", map[string]any{
		"name": "x", "role": "y", "content": "z", "rating": 6, "image": "i",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGalleryCategoryQuery(t *testing.T) {
	r := seededRouter(t)

	_, env := do(t, r, http.MethodGet, "/api/gallery?category=landscape", nil)
	assert.EqualValues(t, 2, *env.Total)

	w, _ := do(t, r, http.MethodGet, "/api/gallery?category=beach", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, r, http.MethodDelete, "/api/gallery/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Gallery item not found", env.Error)
}

func TestContactFlow(t *testing.T) {
	r := seededRouter(t)

	w, env := do(t, r, http.MethodPost, "/api/contact", map[string]any{
		"name": "Михаил", "email": "misha@example.com", "subject": "Июнь", "message": "Есть места?",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Message sent successfully", env.Message)
	assert.Empty(t, env.Data)

	_, env = do(t, r, http.MethodGet, "/api/contact?unread_only=true", nil)
	msgs := decode[[]map[string]any](t, env.Data)
	require.Len(t, msgs, 1)
	id := msgs[0]["id"].(string)

	w, env = do(t, r, http.MethodPut, "/api/contact/"+id+"/read", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Message marked as read", env.Message)

	_, env = do(t, r, http.MethodGet, "/api/contact?unread_only=true", nil)
	assert.EqualValues(t, 0, *env.Total)

	w, env = do(t, r, http.MethodPut, "/api/contact/missing/read", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Message not found", env.Error)

	w, _ = do(t, r, http.MethodPut, "/api/contact/"+id, map[string]any{"read": false})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSettingsSingleton(t *testing.T) {
	r, _ := newTestRouter(t, 10)

	w, env := do(t, r, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[map[string]any](t, env.Data)
	assert.Equal(t, "Padel Tour Academia", first["name"])
	assert.Equal(t, "default", first["id"])

	w, env = do(t, r, http.MethodPut, "/api/settings", map[string]any{"phone": "+34 111"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[map[string]any](t, env.Data)
	assert.Equal(t, "+34 111", updated["phone"])
	assert.Equal(t, first["name"], updated["name"])
	assert.Equal(t, first["created_at"], updated["created_at"])

	w, _ = do(t, r, http.MethodPut, "/api/settings", map[string]any{"email": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboard(t *testing.T) {
	r := seededRouter(t)

	w, env := do(t, r, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[map[string]any](t, env.Data)
	assert.Equal(t, 3.0, stats["total_tours"])
	assert.Equal(t, 5.0, stats["total_gallery_items"])
}

func TestPublicWritesAreRateLimited(t *testing.T) {
	r, c := newTestRouter(t, 2)
	_, err := c.Seeder.Seed(context.Background())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		w, _ := do(t, r, http.MethodPost, "/api/bookings", bookingBody("1", 1))
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w, env := do(t, r, http.MethodPost, "/api/bookings", bookingBody("1", 1))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.False(t, env.Success)

	// reads are not throttled
	w, _ = do(t, r, http.MethodGet, "/api/bookings", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
