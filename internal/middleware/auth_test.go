package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/medcoop/clinic-api/internal/model"
	"github.com/medcoop/clinic-api/internal/session"
)

func doctorSession() *session.Session {
	return &session.Session{ID: "s1", UserID: 2, Username: "doctor", Role: model.RoleDoctor, Name: "Dr. Ivanov"}
}

func adminSession() *session.Session {
	return &session.Session{ID: "s2", UserID: 1, Username: "admin", Role: model.RoleAdmin, Name: "Admin"}
}

func TestCheckAccessAnonymous(t *testing.T) {
	assert.True(t, CheckAccess(nil, CapabilityAnonymous).Allowed)
	assert.True(t, CheckAccess(adminSession(), CapabilityAnonymous).Allowed)
}

func TestCheckAccessAuthenticated(t *testing.T) {
	d := CheckAccess(nil, CapabilityAuthenticated)
	assert.False(t, d.Allowed)
	assert.Equal(t, "/login", d.RedirectTo)

	assert.True(t, CheckAccess(doctorSession(), CapabilityAuthenticated).Allowed)
}

func TestCheckAccessDoctorOrAdmin(t *testing.T) {
	assert.True(t, CheckAccess(doctorSession(), CapabilityDoctorOrAdmin).Allowed)
	assert.True(t, CheckAccess(adminSession(), CapabilityDoctorOrAdmin).Allowed)

	stranger := &session.Session{ID: "s3", Role: "nurse"}
	d := CheckAccess(stranger, CapabilityDoctorOrAdmin)
	assert.False(t, d.Allowed)
	assert.Equal(t, "/login", d.RedirectTo)
	assert.NotEmpty(t, d.Message)
}

// Admin-only role failures land on the dashboard, not the login page: the
// caller is still a valid user, just not an administrator.
func TestCheckAccessAdminOnlyRedirectAsymmetry(t *testing.T) {
	assert.True(t, CheckAccess(adminSession(), CapabilityAdminOnly).Allowed)

	d := CheckAccess(doctorSession(), CapabilityAdminOnly)
	assert.False(t, d.Allowed)
	assert.Equal(t, "/dashboard", d.RedirectTo)

	missing := CheckAccess(nil, CapabilityAdminOnly)
	assert.Equal(t, "/login", missing.RedirectTo)
}

type fakeStore struct {
	sessions map[string]*session.Session
}

func (f *fakeStore) Create(ctx context.Context, user *model.User) (*session.Session, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStore) Get(ctx context.Context, id string) (*session.Session, error) {
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return nil, session.ErrNotFound
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

// fakeSigner passes session ids through unchanged.
type fakeSigner struct{}

func (fakeSigner) Sign(sessionID string) (string, error) { return sessionID, nil }

func (fakeSigner) Verify(token string) (string, error) {
	if token == "" {
		return "", errors.New("empty token")
	}
	return token, nil
}

func newTestRouter(store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	guard := NewGuard(store, fakeSigner{}, "clinic_session")

	r := gin.New()
	r.GET("/api/doctors", guard.Require(CapabilityAdminOnly), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": CurrentSession(c).Username})
	})
	r.GET("/api/patients", guard.Require(CapabilityDoctorOrAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": CurrentSession(c).Username})
	})
	return r
}

func request(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "clinic_session", Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	r := newTestRouter(&fakeStore{sessions: map[string]*session.Session{}})

	w := request(r, "/api/patients", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestGuardAllowsDoctorOnClinicalRoutes(t *testing.T) {
	store := &fakeStore{sessions: map[string]*session.Session{"s1": doctorSession()}}
	r := newTestRouter(store)

	w := request(r, "/api/patients", "s1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "doctor")
}

func TestGuardSendsDoctorToDashboardOnAdminRoutes(t *testing.T) {
	store := &fakeStore{sessions: map[string]*session.Session{"s1": doctorSession()}}
	r := newTestRouter(store)

	w := request(r, "/api/doctors", "s1")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/dashboard?error=")
}

func TestGuardTreatsUnknownSessionAsAnonymous(t *testing.T) {
	r := newTestRouter(&fakeStore{sessions: map[string]*session.Session{}})

	w := request(r, "/api/patients", "expired-session")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
