package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"

	"lifeorg/backend/internal/dto"
	"lifeorg/backend/internal/service"
	"lifeorg/backend/pkg/jwt"
	"lifeorg/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	registerResult *dto.TokenResponse
	registerErr    error
	loginResult    *dto.TokenResponse
	loginErr       error
	logoutErr      error
	changePassErr  error
}

func (m *mockAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.TokenResponse, error) {
	return m.registerResult, m.registerErr
}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Logout(_ context.Context, _ *jwt.Claims) error {
	return m.logoutErr
}
func (m *mockAuthService) ChangePassword(_ context.Context, _ string, _ *dto.ChangePasswordRequest) error {
	return m.changePassErr
}

// ── Mock TaskService ──

type mockTaskService struct {
	listResult    []dto.TaskResponse
	listTotal     int64
	listErr       error
	createResult  *dto.TaskResponse
	createErr     error
	getResult     *dto.TaskResponse
	getErr        error
	updateResult  *dto.TaskResponse
	updateErr     error
	deleteErr     error
	summaryResult *dto.TaskSummaryResponse
	summaryErr    error
}

func (m *mockTaskService) List(_ context.Context, _ string, _ *dto.TaskListRequest) ([]dto.TaskResponse, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}
func (m *mockTaskService) Create(_ context.Context, _ string, _ *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockTaskService) GetByID(_ context.Context, _, _ string) (*dto.TaskResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockTaskService) Update(_ context.Context, _, _ string, _ *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockTaskService) Delete(_ context.Context, _, _ string) error {
	return m.deleteErr
}
func (m *mockTaskService) Summary(_ context.Context, _ string) (*dto.TaskSummaryResponse, error) {
	return m.summaryResult, m.summaryErr
}

// ── Mock ScheduleService ──

type mockScheduleService struct {
	listResult     *dto.EntryListResponse
	listErr        error
	createResult   *dto.CreateEntryResponse
	createErr      error
	updateEntry    *dto.EntryResponse
	updateAdvisory *dto.Advisory
	updateErr      error
	deleteErr      error
}

func (m *mockScheduleService) List(_ context.Context, _ string, _ *dto.EntryListRequest) (*dto.EntryListResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockScheduleService) Create(_ context.Context, _ string, _ *dto.CreateEntryRequest) (*dto.CreateEntryResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockScheduleService) Update(_ context.Context, _, _ string, _ *dto.UpdateEntryRequest) (*dto.EntryResponse, *dto.Advisory, error) {
	return m.updateEntry, m.updateAdvisory, m.updateErr
}
func (m *mockScheduleService) Delete(_ context.Context, _, _ string) error {
	return m.deleteErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) CalendarICS(_ context.Context, _, _, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) WeekXLSX(_ context.Context, _, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func setAuth(c *gin.Context) {
	c.Set("user_id", "test-user-id")
	c.Set("role", "newcomer")
	c.Set("claims", &jwt.Claims{
		UserID:    "test-user-id",
		Role:      "newcomer",
		TokenType: "access",
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        "test-jti",
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(15 * time.Minute)),
		},
	})
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Register_Success(t *testing.T) {
	mock := &mockAuthService{
		registerResult: &dto.TokenResponse{
			AccessToken:  "test-access-token",
			RefreshToken: "test-refresh-token",
			ExpiresIn:    900,
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		FullName: "Amina Diallo",
		Email:    "amina@example.com",
		Password: "Secret123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Register_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	mock := &mockAuthService{registerErr: service.ErrEmailTaken}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		FullName: "Amina Diallo",
		Email:    "amina@example.com",
		Password: "Secret123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11002 {
		t.Errorf("expected error code 11002, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mock := &mockAuthService{loginErr: service.ErrInvalidCredentials}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "amina@example.com",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)

	r := gin.New()
	r.POST("/auth/logout", func(c *gin.Context) {
		setAuth(c)
		h.Logout(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAuthHandler_Logout_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)

	r := gin.New()
	r.POST("/auth/logout", h.Logout)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthHandler_ChangePassword_WrongCurrent(t *testing.T) {
	mock := &mockAuthService{changePassErr: service.ErrWrongPassword}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/auth/password", jsonBody(dto.ChangePasswordRequest{
		CurrentPassword: "Old12345",
		NewPassword:     "New12345",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/auth/password", func(c *gin.Context) {
		setAuth(c)
		h.ChangePassword(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11003 {
		t.Errorf("expected error code 11003, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// TaskHandler Tests
// ═══════════════════════════════════════════════════════════

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	mock := &mockTaskService{
		listResult: []dto.TaskResponse{{ID: "task-1", Title: "Open a bank account"}},
		listTotal:  1,
	}
	h := NewTaskHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/tasks?q=bank", nil)

	r := gin.New()
	r.GET("/tasks", func(c *gin.Context) {
		setAuth(c)
		h.ListTasks(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestTaskHandler_ListTasks_BadStatus(t *testing.T) {
	h := NewTaskHandler(&mockTaskService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/tasks?status=bogus", nil)

	r := gin.New()
	r.GET("/tasks", func(c *gin.Context) {
		setAuth(c)
		h.ListTasks(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	mock := &mockTaskService{
		createResult: &dto.TaskResponse{ID: "task-1", Title: "Apply for SIN", Status: "pending"},
	}
	h := NewTaskHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/tasks", jsonBody(dto.CreateTaskRequest{
		Title: "Apply for SIN",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/tasks", func(c *gin.Context) {
		setAuth(c)
		h.CreateTask(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestTaskHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"NotFound", service.ErrTaskNotFound, 404, 13001},
		{"BadDate", service.ErrTaskDateInvalid, 400, 13002},
		{"InternalError", errors.New("unknown"), 500, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockTaskService{getErr: tt.err}
			h := NewTaskHandler(mock)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/tasks/task-1", nil)

			r := gin.New()
			r.GET("/tasks/:id", func(c *gin.Context) {
				setAuth(c)
				h.GetTask(c)
			})
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			resp := parseResponse(w)
			if resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

// ═══════════════════════════════════════════════════════════
// ScheduleHandler Tests
// ═══════════════════════════════════════════════════════════

func TestScheduleHandler_CreateEntry_WithAdvisory(t *testing.T) {
	mock := &mockScheduleService{
		createResult: &dto.CreateEntryResponse{
			ID:                 "entry-1",
			WeeklyTotalMinutes: 1500,
			WeeklyTotalText:    "25h 0m",
			Advisory: &dto.Advisory{
				Code:    service.AdvisoryWeeklyLimitExceeded,
				Message: "Reminder: You are over 24 hours this week (25h 0m).",
			},
		},
	}
	h := NewScheduleHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/schedule/entries", jsonBody(dto.CreateEntryRequest{
		Kind:      "work",
		EntryDate: "2026-03-02",
		StartTime: "09:00",
		EndTime:   "17:00",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/schedule/entries", func(c *gin.Context) {
		setAuth(c)
		h.CreateEntry(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	var resp struct {
		Code int `json:"code"`
		Data struct {
			Advisory *dto.Advisory `json:"advisory"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Data.Advisory == nil || resp.Data.Advisory.Code != service.AdvisoryWeeklyLimitExceeded {
		t.Errorf("expected weekly limit advisory, got %+v", resp.Data.Advisory)
	}
}

func TestScheduleHandler_CreateEntry_BadKind(t *testing.T) {
	h := NewScheduleHandler(&mockScheduleService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/schedule/entries", jsonBody(dto.CreateEntryRequest{
		Kind:      "gym",
		EntryDate: "2026-03-02",
		StartTime: "09:00",
		EndTime:   "17:00",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/schedule/entries", func(c *gin.Context) {
		setAuth(c)
		h.CreateEntry(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestScheduleHandler_CreateEntry_TooLong(t *testing.T) {
	mock := &mockScheduleService{createErr: service.ErrEntryTooLong}
	h := NewScheduleHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/schedule/entries", jsonBody(dto.CreateEntryRequest{
		Kind:      "work",
		EntryDate: "2026-03-02",
		StartTime: "06:00",
		EndTime:   "23:00",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/schedule/entries", func(c *gin.Context) {
		setAuth(c)
		h.CreateEntry(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 16003 {
		t.Errorf("expected error code 16003, got %d", resp.Code)
	}
}

func TestScheduleHandler_UpdateEntry_NotFound(t *testing.T) {
	mock := &mockScheduleService{updateErr: service.ErrEntryNotFound}
	h := NewScheduleHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/schedule/entries/missing", jsonBody(dto.UpdateEntryRequest{
		EntryDate: "2026-03-02",
		StartTime: "09:00",
		EndTime:   "17:00",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/schedule/entries/:id", func(c *gin.Context) {
		setAuth(c)
		h.UpdateEntry(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 16001 {
		t.Errorf("expected error code 16001, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_Calendar_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("BEGIN:VCALENDAR"),
		filename: "schedule_2026-01.ics",
	}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/calendar?month=2026-01", nil)

	r := gin.New()
	r.GET("/export/calendar", func(c *gin.Context) {
		setAuth(c)
		h.ExportCalendar(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/calendar" {
		t.Errorf("unexpected content type: %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("expected Content-Disposition header")
	}
}

func TestExportHandler_Calendar_MissingMonth(t *testing.T) {
	h := NewExportHandler(&mockExportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/calendar", nil)

	r := gin.New()
	r.GET("/export/calendar", func(c *gin.Context) {
		setAuth(c)
		h.ExportCalendar(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestExportHandler_Week_BadWeekStart(t *testing.T) {
	mock := &mockExportService{err: service.ErrExportWeekInvalid}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/week?weekStart=bogus", nil)

	r := gin.New()
	r.GET("/export/week", func(c *gin.Context) {
		setAuth(c)
		h.ExportWeek(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 18002 {
		t.Errorf("expected error code 18002, got %d", resp.Code)
	}
}
