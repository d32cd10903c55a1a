package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/civictrack/admin/internal/models"
	"github.com/civictrack/admin/internal/services"
	"github.com/civictrack/admin/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// mockAuthService is a mock implementation of AuthService and middleware.UserResolver
type mockAuthService struct {
	passwords map[string]string
	users     map[int]*models.User
	sessions  map[string]int
	loginErr  error
	logoutErr error
	resolveFn func(token string) (*models.User, error)

	loginCalls int
	destroyed  []string
	nextToken  int
}

func newMockAuthService() *mockAuthService {
	return &mockAuthService{
		passwords: map[string]string{"root": "s3cret", "jane": "s3cret"},
		users: map[int]*models.User{
			1: {ID: 1, Username: "root", Role: models.RoleAdmin, AccountStatus: models.AccountStatusActive},
			2: {ID: 2, Username: "jane", Role: models.RoleCitizen, AccountStatus: models.AccountStatusActive},
		},
		sessions: map[string]int{},
	}
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*models.AdminIdentity, string, error) {
	m.loginCalls++
	if m.loginErr != nil {
		return nil, "", m.loginErr
	}
	if m.passwords[username] != password {
		return nil, "", services.ErrInvalidCredentials
	}
	for _, user := range m.users {
		if user.Username == username && user.Role == models.RoleAdmin {
			m.nextToken++
			token := fmt.Sprintf("tok-%d", m.nextToken)
			m.sessions[token] = user.ID
			return &models.AdminIdentity{ID: user.ID, Username: user.Username, Role: user.Role}, token, nil
		}
	}
	return nil, "", services.ErrInvalidCredentials
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	m.destroyed = append(m.destroyed, token)
	if m.logoutErr != nil {
		return m.logoutErr
	}
	delete(m.sessions, token)
	return nil
}

func (m *mockAuthService) ResolveUser(ctx context.Context, token string) (*models.User, error) {
	if m.resolveFn != nil {
		return m.resolveFn(token)
	}
	id, ok := m.sessions[token]
	if !ok {
		return nil, nil
	}
	return m.users[id], nil
}

// openSession binds a fresh token to the user, bypassing login
func (m *mockAuthService) openSession(userID int) string {
	m.nextToken++
	token := fmt.Sprintf("tok-%d", m.nextToken)
	m.sessions[token] = userID
	return token
}

// mockAdminService is a mock implementation of AdminService
type mockAdminService struct {
	issues       []models.Issue
	detail       *models.IssueDetail
	applications []models.OfficialApplication
	officials    []models.Official
	affected     int64
	err          error

	calls          int
	lastID         int
	lastReviewer   int
	lastAppStatus  models.ApplicationStatus
	lastUserStatus models.AccountStatus
}

func (m *mockAdminService) ListIssues(ctx context.Context) ([]models.Issue, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.issues, nil
}

func (m *mockAdminService) GetIssueDetail(ctx context.Context, id int) (*models.IssueDetail, error) {
	m.calls++
	m.lastID = id
	if m.err != nil {
		return nil, m.err
	}
	return m.detail, nil
}

func (m *mockAdminService) ListPendingApplications(ctx context.Context) ([]models.OfficialApplication, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.applications, nil
}

func (m *mockAdminService) ReviewApplication(ctx context.Context, id int, status models.ApplicationStatus, reviewerID int) (int64, error) {
	m.calls++
	m.lastID = id
	m.lastAppStatus = status
	m.lastReviewer = reviewerID
	if m.err != nil {
		return 0, m.err
	}
	return m.affected, nil
}

func (m *mockAdminService) ListOfficials(ctx context.Context) ([]models.Official, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.officials, nil
}

func (m *mockAdminService) SetOfficialStatus(ctx context.Context, id int, status models.AccountStatus) (int64, error) {
	m.calls++
	m.lastID = id
	m.lastUserStatus = status
	if m.err != nil {
		return 0, m.err
	}
	return m.affected, nil
}

func (m *mockAdminService) DeleteOfficial(ctx context.Context, id int) (int64, error) {
	m.calls++
	m.lastID = id
	if m.err != nil {
		return 0, m.err
	}
	return m.affected, nil
}

// mockPinger is a mock implementation of Pinger
type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(ctx context.Context) error {
	return m.err
}

// testServer bundles a router with its mocks
type testServer struct {
	router  chi.Router
	auth    *mockAuthService
	admin   *mockAdminService
	db      *mockPinger
	cookies *session.CookieCodec
}

// setupTestServer creates a router wired to mocks
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		auth:    newMockAuthService(),
		admin:   &mockAdminService{},
		db:      &mockPinger{},
		cookies: session.NewCookieCodec("test-secret", time.Hour, false),
	}
	ts.router = NewRouter(RouterConfig{
		AuthService:  ts.auth,
		UserResolver: ts.auth,
		AdminService: ts.admin,
		DB:           ts.db,
		Cookies:      ts.cookies,
		Logger:       zaptest.NewLogger(t),
	})
	return ts
}

// cookieFor returns a signed session cookie for the token
func (ts *testServer) cookieFor(t *testing.T, token string) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, ts.cookies.Write(w, token))
	return w.Result().Cookies()[0]
}

// do sends a request through the router
func (ts *testServer) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		if c != nil {
			req.AddCookie(c)
		}
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// sessionCookie extracts the session cookie set by a response
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

var errDatabase = errors.New("database error")
