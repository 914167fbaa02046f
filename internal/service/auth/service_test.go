package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcoop/clinic-api/internal/counter"
	"github.com/medcoop/clinic-api/internal/model"
	"github.com/medcoop/clinic-api/internal/session"
	"github.com/medcoop/clinic-api/pkg/errors"
	"github.com/medcoop/clinic-api/pkg/security"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.NotFound("user", nil)
}

func (f *fakeUserRepo) GetActiveByUsername(ctx context.Context, username string) (*model.User, error) {
	if u, ok := f.users[username]; ok && u.IsActive {
		return u, nil
	}
	return nil, errors.NotFound("user", nil)
}

type fakeSessionStore struct {
	created []*session.Session
}

func (f *fakeSessionStore) Create(ctx context.Context, user *model.User) (*session.Session, error) {
	s := &session.Session{
		ID:       "test-session",
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Name:     user.Name,
	}
	f.created = append(f.created, s)
	return s, nil
}

func (f *fakeSessionStore) Get(ctx context.Context, id string) (*session.Session, error) {
	return nil, session.ErrNotFound
}

func (f *fakeSessionStore) Delete(ctx context.Context, id string) error {
	for i, s := range f.created {
		if s.ID == id {
			f.created = append(f.created[:i], f.created[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeCounter struct {
	counts map[string]int64
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int64{}}
}

func (f *fakeCounter) Incr(ctx context.Context, name string) (int64, error) {
	f.counts[name]++
	return f.counts[name], nil
}

func (f *fakeCounter) Get(ctx context.Context, name string) (int64, error) {
	return f.counts[name], nil
}

func newTestService(t *testing.T) (Service, *fakeSessionStore, *fakeCounter) {
	t.Helper()

	hasher := security.NewBcryptHasher(4)
	hash, err := hasher.Hash("doctor123")
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*model.User{
		"doctor": {ID: 2, Username: "doctor", PasswordHash: hash, Role: model.RoleDoctor, Name: "Dr. Ivanov", IsActive: true},
		"ghost":  {ID: 3, Username: "ghost", PasswordHash: hash, Role: model.RoleDoctor, Name: "Ghost", IsActive: false},
	}}

	sessions := &fakeSessionStore{}
	counters := newFakeCounter()
	return NewService(repo, sessions, counters, hasher), sessions, counters
}

func TestLoginSuccess(t *testing.T) {
	svc, sessions, counters := newTestService(t)

	sess, err := svc.Login(context.Background(), "doctor", "doctor123")
	require.NoError(t, err)

	assert.Equal(t, int64(2), sess.UserID)
	assert.Equal(t, "doctor", sess.Username)
	assert.Equal(t, model.RoleDoctor, sess.Role)
	assert.Equal(t, "Dr. Ivanov", sess.Name)

	assert.Len(t, sessions.created, 1)
	assert.Equal(t, int64(1), counters.counts[counter.SuccessfulLogins])
	assert.Equal(t, int64(0), counters.counts[counter.FailedLogins])
}

func TestLoginWrongPassword(t *testing.T) {
	svc, sessions, counters := newTestService(t)

	_, err := svc.Login(context.Background(), "doctor", "wrong")
	require.Error(t, err)
	assert.Equal(t, errors.ErrUnauthorized, errors.Code(err))

	assert.Empty(t, sessions.created)
	assert.Equal(t, int64(1), counters.counts[counter.FailedLogins])
	assert.Equal(t, int64(0), counters.counts[counter.SuccessfulLogins])
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, counters := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody", "doctor123")
	require.Error(t, err)
	assert.Equal(t, errors.ErrUnauthorized, errors.Code(err))
	assert.Equal(t, int64(1), counters.counts[counter.FailedLogins])
}

// Unknown users and bad passwords must be indistinguishable to the caller.
func TestLoginErrorsAreGeneric(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, errUnknown := svc.Login(context.Background(), "nobody", "x")
	_, errBadPass := svc.Login(context.Background(), "doctor", "x")

	var appUnknown, appBadPass *errors.AppError
	require.ErrorAs(t, errUnknown, &appUnknown)
	require.ErrorAs(t, errBadPass, &appBadPass)
	assert.Equal(t, appUnknown.Message, appBadPass.Message)
}

func TestLoginInactiveUserRejected(t *testing.T) {
	svc, sessions, counters := newTestService(t)

	_, err := svc.Login(context.Background(), "ghost", "doctor123")
	require.Error(t, err)
	assert.Empty(t, sessions.created)
	assert.Equal(t, int64(1), counters.counts[counter.FailedLogins])
}

func TestLogoutRemovesSession(t *testing.T) {
	svc, sessions, _ := newTestService(t)

	sess, err := svc.Login(context.Background(), "doctor", "doctor123")
	require.NoError(t, err)
	require.Len(t, sessions.created, 1)

	require.NoError(t, svc.Logout(context.Background(), sess.ID))
	assert.Empty(t, sessions.created)
}
