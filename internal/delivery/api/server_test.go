package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boothly/config"
	"boothly/internal/delivery/api/router"
	"boothly/internal/delivery/api/router/handler"
	"boothly/internal/infra/qrcode"
	"boothly/internal/infra/seed"
	"boothly/internal/infra/state"
	"boothly/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

// createTestServer wires the real usecases over a provider built from the
// sample seed. mount decides whether the store is provisioned.
func createTestServer(t *testing.T, mount bool) (*echo.Echo, *state.Provider) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	provider := state.NewProvider(seed.Sample(), logger)
	if mount {
		provider.Mount()
		t.Cleanup(provider.Unmount)
	}

	qrService := qrcode.NewQRCodeService(128, "M", "http://localhost:8080")

	params := router.RouterParams{
		HealthHandler: handler.NewHealthHandler(handler.HealthHandlerParams{Stores: provider}),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{
			ProfileUC: impl.NewProfileService(provider, logger), Logger: logger,
		}),
		PortfolioHandler: handler.NewPortfolioHandler(handler.PortfolioHandlerParams{
			PortfolioUC: impl.NewPortfolioService(provider, logger), Logger: logger,
		}),
		PricingHandler: handler.NewPricingHandler(handler.PricingHandlerParams{
			PricingUC: impl.NewPricingService(provider, logger), Logger: logger,
		}),
		BookingHandler: handler.NewBookingHandler(handler.BookingHandlerParams{
			BookingUC:  impl.NewBookingService(provider, logger),
			EarningsUC: impl.NewEarningsService(provider),
			Logger:     logger,
		}),
		AvailabilityHandler: handler.NewAvailabilityHandler(handler.AvailabilityHandlerParams{
			AvailabilityUC: impl.NewAvailabilityService(provider, logger), Logger: logger,
		}),
		LayoutHandler: handler.NewLayoutHandler(handler.LayoutHandlerParams{
			LayoutUC: impl.NewLayoutService(provider, logger),
		}),
		PublicPageHandler: handler.NewPublicPageHandler(handler.PublicPageHandlerParams{
			PublicPageUC: impl.NewPublicPageService(provider, qrService, logger), Logger: logger,
		}),
	}

	return NewEcho(cfg, logger, params), provider
}

// fieldDetails returns the per-field validation details of an error envelope.
func (e envelope) fieldDetails() map[string]any {
	if e.Error == nil {
		return nil
	}
	details, _ := e.Error.Details.(map[string]any)

	return details
}

func doRequest(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec, env
}

func TestServer_HealthCheck(t *testing.T) {
	e, _ := createTestServer(t, true)

	rec, env := doRequest(t, e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_StoreNotProvisioned(t *testing.T) {
	e, _ := createTestServer(t, false)

	for _, path := range []string{"/health", "/api/v1/profile", "/api/v1/bookings", "/book/arjun-tatts"} {
		rec, env := doRequest(t, e, http.MethodGet, path, "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
		require.NotNil(t, env.Error, path)
		assert.Equal(t, "STORE_NOT_PROVISIONED", env.Error.Code)
	}
}

func TestServer_AddServiceThenList(t *testing.T) {
	e, provider := createTestServer(t, true)

	rec, env := doRequest(t, e, http.MethodPost, "/api/v1/services",
		`{"id":"s6","title":"Touch-up","price":500,"duration":30}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id":"s6","title":"Touch-up","description":"","price":500,"duration":30,"durationLabel":"30m"}`, string(env.Data))

	rec, env = doRequest(t, e, http.MethodGet, "/api/v1/services", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var services []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &services))
	require.Len(t, services, 6)
	assert.Equal(t, "s6", services[5]["id"])
	assert.Equal(t, "1h", services[0]["durationLabel"])

	assert.Len(t, provider.MustStore().Services(), 6)
}

func TestServer_ServiceValidation(t *testing.T) {
	e, provider := createTestServer(t, true)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "negative price", body: `{"title":"X","price":-1,"duration":30}`, wantStatus: 400, wantCode: "VALIDATION_FAILED"},
		{name: "zero duration", body: `{"title":"X","price":10,"duration":0}`, wantStatus: 400, wantCode: "VALIDATION_FAILED"},
		{name: "non numeric price", body: `{"title":"X","price":"ten","duration":30}`, wantStatus: 400, wantCode: "INVALID_INPUT"},
		{name: "missing title", body: `{"price":10,"duration":30}`, wantStatus: 400, wantCode: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, e, http.MethodPost, "/api/v1/services", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}

	assert.Len(t, provider.MustStore().Services(), 5)
}

func TestServer_UnknownServiceEdit(t *testing.T) {
	e, _ := createTestServer(t, true)

	rec, env := doRequest(t, e, http.MethodPut, "/api/v1/services/s42",
		`{"title":"X","price":10,"duration":30}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SERVICE_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "service s42", env.Error.Details)
}

func TestServer_BookingFilterAndStatus(t *testing.T) {
	e, _ := createTestServer(t, true)

	rec, env := doRequest(t, e, http.MethodPatch, "/api/v1/bookings/b1/status", `{"status":"cancelled"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, env = doRequest(t, e, http.MethodGet, "/api/v1/bookings?status=cancelled", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var bookings []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, "b1", bookings[0]["id"])

	rec, env = doRequest(t, e, http.MethodGet, "/api/v1/bookings?status=archived", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "oneof", env.fieldDetails()["status"])

	rec, _ = doRequest(t, e, http.MethodPatch, "/api/v1/bookings/b1/status", `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ToggleWeeklyBlock(t *testing.T) {
	e, provider := createTestServer(t, true)
	before := provider.MustStore().Availability()

	rec, _ := doRequest(t, e, http.MethodPost, "/api/v1/availability/weekly/sunday/morning/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	after := provider.MustStore().Availability()
	assert.Equal(t, !before.WeeklySchedule.Sunday.Morning, after.WeeklySchedule.Sunday.Morning)
	assert.Equal(t, before.TimeSlots, after.TimeSlots)

	rec, env := doRequest(t, e, http.MethodPost, "/api/v1/availability/weekly/someday/morning/toggle", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_DAY", env.Error.Code)
}

func TestServer_PatchAvailabilityKeepsAbsentParts(t *testing.T) {
	e, provider := createTestServer(t, true)
	before := provider.MustStore().Availability()

	rec, _ := doRequest(t, e, http.MethodPatch, "/api/v1/availability",
		`{"settings":{"bufferMinutes":15,"maxAdvanceBookingDays":30,"allowSameDay":true}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	after := provider.MustStore().Availability()
	require.NotNil(t, after.Settings)
	assert.Equal(t, 15, after.Settings.BufferMinutes)
	assert.Equal(t, before.TimeSlots, after.TimeSlots)
	assert.Equal(t, before.WeeklySchedule, after.WeeklySchedule)
}

func TestServer_Sidebar(t *testing.T) {
	e, _ := createTestServer(t, true)

	_, env := doRequest(t, e, http.MethodPost, "/api/v1/layout/sidebar/toggle", "")
	assert.JSONEq(t, `{"sidebarCollapsed":true}`, string(env.Data))

	_, env = doRequest(t, e, http.MethodPut, "/api/v1/layout/sidebar", `{"collapsed":false}`)
	assert.JSONEq(t, `{"sidebarCollapsed":false}`, string(env.Data))

	rec, _ := doRequest(t, e, http.MethodPut, "/api/v1/layout/sidebar", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_PublicBookingRequest(t *testing.T) {
	e, provider := createTestServer(t, true)

	rec, env := doRequest(t, e, http.MethodPost, "/book/arjun-tatts/requests",
		`{"serviceId":"s1","slotId":"ts5","clientName":"Meera Joshi","clientEmail":"meera@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var booking map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.Equal(t, "pending", booking["status"])
	assert.Equal(t, "2025-04-15", booking["date"])
	assert.Len(t, provider.MustStore().Bookings(), 5)

	rec, env = doRequest(t, e, http.MethodPost, "/book/arjun-tatts/requests",
		`{"serviceId":"s1","slotId":"ts6","clientName":"Meera Joshi","clientEmail":"meera@example.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "SLOT_UNAVAILABLE", env.Error.Code)

	rec, env = doRequest(t, e, http.MethodGet, "/book/nobody", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROVIDER_NOT_FOUND", env.Error.Code)
}

func TestServer_QRCode(t *testing.T) {
	e, _ := createTestServer(t, true)

	rec, _ := doRequest(t, e, http.MethodGet, "/book/arjun-tatts/qr", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, rec.Body.Bytes()[:4])
}

func TestServer_UnknownRoute(t *testing.T) {
	e, _ := createTestServer(t, true)

	rec, env := doRequest(t, e, http.MethodGet, "/api/v1/nothing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

func TestServer_Portfolio(t *testing.T) {
	e, provider := createTestServer(t, true)

	rec, env := doRequest(t, e, http.MethodGet, "/api/v1/portfolio", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var images []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &images))
	assert.Len(t, images, 6)

	rec, env = doRequest(t, e, http.MethodPost, "/api/v1/portfolio",
		`{"url":"https://img.example.com/koi.jpg","title":"Koi sleeve"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var added map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &added))
	assert.NotEmpty(t, added["id"])
	assert.Len(t, provider.MustStore().Portfolio(), 7)

	rec, _ = doRequest(t, e, http.MethodDelete, "/api/v1/portfolio/"+added["id"].(string), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, provider.MustStore().Portfolio(), 6)

	rec, env = doRequest(t, e, http.MethodDelete, "/api/v1/portfolio/p404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PORTFOLIO_IMAGE_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "image p404", env.Error.Details)

	rec, env = doRequest(t, e, http.MethodPut, "/api/v1/portfolio",
		`{"images":[{"id":"p1","url":"https://img.example.com/one.jpg","title":"Only"}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `[{"id":"p1","url":"https://img.example.com/one.jpg","title":"Only","description":""}]`, string(env.Data))
	assert.Len(t, provider.MustStore().Portfolio(), 1)
}

func TestServer_ReplaceRequiresIDs(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		body  string
		field string
	}{
		{
			name:  "portfolio",
			path:  "/api/v1/portfolio",
			body:  `{"images":[{"id":"p1","url":"https://img.example.com/a.jpg"},{"url":"https://img.example.com/b.jpg"}]}`,
			field: "images[1].id",
		},
		{
			name:  "services",
			path:  "/api/v1/services",
			body:  `{"services":[{"title":"Flash","price":1500,"duration":60}]}`,
			field: "services[0].id",
		},
		{
			name:  "bookings",
			path:  "/api/v1/bookings",
			body:  `{"bookings":[{"clientName":"Kabir","serviceId":"s1","serviceName":"Flash","date":"2025-05-01","time":"10:00","duration":60}]}`,
			field: "bookings[0].id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, provider := createTestServer(t, true)
			store := provider.MustStore()

			rec, env := doRequest(t, e, http.MethodPut, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.Equal(t, map[string]any{tt.field: "required"}, env.fieldDetails())
			assert.Len(t, store.Portfolio(), 6)
			assert.Len(t, store.Services(), 5)
			assert.Len(t, store.Bookings(), 4)
		})
	}
}

func TestServer_ReplaceBookingsDefaultsStatus(t *testing.T) {
	e, provider := createTestServer(t, true)

	rec, env := doRequest(t, e, http.MethodPut, "/api/v1/bookings",
		`{"bookings":[
			{"id":"b1","clientName":"Kabir","serviceId":"s1","serviceName":"Flash","date":"2025-05-01","time":"10:00","duration":60},
			{"id":"b2","clientName":"Ira","serviceId":"s2","serviceName":"Custom","date":"2025-05-02","time":"12:00","duration":120,"status":"completed"}
		]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var bookings []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &bookings))
	require.Len(t, bookings, 2)
	assert.Equal(t, "pending", bookings[0]["status"])
	assert.Equal(t, "completed", bookings[1]["status"])
	assert.Len(t, provider.MustStore().Bookings(), 2)
}

func TestServer_ServiceDurationLabels(t *testing.T) {
	e, _ := createTestServer(t, true)

	rec, env := doRequest(t, e, http.MethodPut, "/api/v1/services",
		`{"services":[
			{"id":"a","title":"Quick","price":100,"duration":45},
			{"id":"b","title":"Medium","price":200,"duration":90},
			{"id":"c","title":"Long","price":300,"duration":120}
		]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var services []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &services))
	labels := make([]any, 0, len(services))
	for _, s := range services {
		labels = append(labels, s["durationLabel"])
	}
	assert.Equal(t, []any{"45m", "1h30m", "2h"}, labels)
}

func TestServer_DeleteService(t *testing.T) {
	e, provider := createTestServer(t, true)

	rec, _ := doRequest(t, e, http.MethodDelete, "/api/v1/services/s1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, provider.MustStore().Services(), 4)

	rec, env := doRequest(t, e, http.MethodDelete, "/api/v1/services/s1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SERVICE_NOT_FOUND", env.Error.Code)
}

func TestServer_Profile(t *testing.T) {
	e, provider := createTestServer(t, true)

	rec, env := doRequest(t, e, http.MethodPatch, "/api/v1/profile", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, _ = doRequest(t, e, http.MethodPatch, "/api/v1/profile", `{"bio":"Fine line only"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Fine line only", provider.MustStore().User().Bio)

	before := provider.MustStore().User().CreatedAt
	rec, env = doRequest(t, e, http.MethodPost, "/api/v1/onboarding/complete", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var profile map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "arjun-tatts", profile["username"])
	assert.NotEqual(t, before, provider.MustStore().User().CreatedAt)
}

func TestServer_DashboardAndEarnings(t *testing.T) {
	e, _ := createTestServer(t, true)

	rec, env := doRequest(t, e, http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary struct {
		TotalBookings        int              `json:"totalBookings"`
		StatusCounts         map[string]int   `json:"statusCounts"`
		UpcomingBookings     []map[string]any `json:"upcomingBookings"`
		CurrentMonthEarnings float64          `json:"currentMonthEarnings"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 4, summary.TotalBookings)
	assert.Equal(t, map[string]int{"pending": 1, "confirmed": 3, "completed": 0, "cancelled": 0}, summary.StatusCounts)
	require.Len(t, summary.UpcomingBookings, 3)
	assert.Equal(t, "b1", summary.UpcomingBookings[0]["id"])
	assert.Equal(t, float64(32000), summary.CurrentMonthEarnings)

	rec, env = doRequest(t, e, http.MethodGet, "/api/v1/earnings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var earnings map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &earnings))
	assert.Equal(t, float64(32000), earnings["currentMonth"])
	assert.NotEmpty(t, earnings["recentTransactions"])
}

func TestServer_SlotsGroupedByDay(t *testing.T) {
	e, _ := createTestServer(t, true)

	rec, env := doRequest(t, e, http.MethodGet, "/api/v1/availability/slots", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var groups []struct {
		Day   string           `json:"day"`
		Slots []map[string]any `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &groups))

	days := make([]string, 0, len(groups))
	sizes := make([]int, 0, len(groups))
	for _, g := range groups {
		days = append(days, g.Day)
		sizes = append(sizes, len(g.Slots))
	}
	assert.Equal(t, []string{"Monday", "Tuesday", "Thursday", "Friday", "Saturday"}, days)
	assert.Equal(t, []int{4, 4, 6, 6, 4}, sizes)
}

func TestServer_AvailabilitySetup(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantField  string
		wantTag    string
	}{
		{
			name:       "valid",
			body:       `{"workingDays":["monday","wednesday"],"startTime":"09:00","endTime":"18:00","bufferMinutes":15,"maxAdvanceBookingDays":30}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "end before start",
			body:       `{"workingDays":["monday"],"startTime":"18:00","endTime":"09:00","maxAdvanceBookingDays":30}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "endTime",
			wantTag:    "after_start",
		},
		{
			name:       "end equals start",
			body:       `{"workingDays":["monday"],"startTime":"10:00","endTime":"10:00","maxAdvanceBookingDays":30}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "endTime",
			wantTag:    "after_start",
		},
		{
			name:       "unknown day",
			body:       `{"workingDays":["funday"],"startTime":"09:00","endTime":"18:00","maxAdvanceBookingDays":30}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "workingDays[0]",
			wantTag:    "weekday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, provider := createTestServer(t, true)

			rec, env := doRequest(t, e, http.MethodPost, "/api/v1/availability/setup", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
				assert.Equal(t, tt.wantTag, env.fieldDetails()[tt.wantField])
				assert.Nil(t, provider.MustStore().Availability().Settings)
				return
			}

			availability := provider.MustStore().Availability()
			assert.True(t, availability.WeeklySchedule.Monday.Morning)
			assert.True(t, availability.WeeklySchedule.Wednesday.Evening)
			assert.False(t, availability.WeeklySchedule.Tuesday.Morning)
			require.NotNil(t, availability.Settings)
			assert.Equal(t, 15, availability.Settings.BufferMinutes)
			assert.NotEmpty(t, availability.TimeSlots)
		})
	}
}

func TestServer_ClearedSlotsStayArrays(t *testing.T) {
	e, _ := createTestServer(t, true)

	rec, _ := doRequest(t, e, http.MethodPatch, "/api/v1/availability", `{"timeSlots":[]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	_, env := doRequest(t, e, http.MethodGet, "/api/v1/availability", "")
	var availability map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &availability))
	assert.JSONEq(t, `[]`, string(availability["timeSlots"]))

	_, env = doRequest(t, e, http.MethodGet, "/book/arjun-tatts", "")
	var page map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.JSONEq(t, `[]`, string(page["availableSlots"]))
}
