package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/outpass_staff_bot/internal/api"
	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type storedSession struct {
	sess   model.Session
	sealed []byte
}

type memorySessionStore struct {
	mu   sync.Mutex
	rows map[int64]storedSession
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{rows: make(map[int64]storedSession)}
}

func (m *memorySessionStore) Save(_ context.Context, sess *model.Session, sealed []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *sess
	row.Token = ""
	m.rows[sess.TelegramID] = storedSession{sess: row, sealed: sealed}
	return nil
}

func (m *memorySessionStore) Get(_ context.Context, telegramID int64) (*model.Session, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[telegramID]
	if !ok {
		return nil, nil, nil
	}
	sess := row.sess
	return &sess, row.sealed, nil
}

func (m *memorySessionStore) Delete(_ context.Context, telegramID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, telegramID)
	return nil
}

func (m *memorySessionStore) DeleteExpired(_ context.Context, now time.Time) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []int64
	for id, row := range m.rows {
		if row.sess.Expired(now) {
			ids = append(ids, id)
			delete(m.rows, id)
		}
	}
	return ids, nil
}

type fakeAuth struct {
	token      string
	staffName  string
	profile    *model.StaffProfile
	profileErr error
	loginErr   error
}

func (f *fakeAuth) Login(_ context.Context, email, _ string) (*api.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &api.LoginResult{Token: f.token, Staff: model.StaffProfile{Name: f.staffName, Email: email}}, nil
}

func (f *fakeAuth) GetProfile(_ context.Context, _ *model.Session) (*model.StaffProfile, error) {
	return f.profile, f.profileErr
}

func testKey() [32]byte {
	var key [32]byte
	copy(key[:], strings.Repeat("k", 32))
	return key
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func newSessionService(store SessionStore, auth Authenticator, now time.Time) *SessionService {
	svc := NewSessionService(store, auth, NewTokenSealer(testKey()), time.Hour, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func TestLoginStoresSealedSession(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	exp := now.Add(3 * time.Hour).Truncate(time.Second)
	token := signedToken(t, exp)
	store := newMemorySessionStore()
	svc := newSessionService(store, &fakeAuth{token: token, staffName: "Dr. Priya"}, now)

	sess, err := svc.Login(context.Background(), 7, " priya@college.edu ", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Priya", sess.StaffName)
	assert.Equal(t, "priya@college.edu", sess.StaffEmail)
	assert.True(t, exp.Equal(sess.ExpiresAt))

	_, sealed, _ := store.Get(context.Background(), 7)
	assert.NotContains(t, string(sealed), token)

	loaded, err := svc.Require(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, token, loaded.Token)
}

func TestLoginFallsBackToTTLAndProfileName(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	auth := &fakeAuth{token: "opaque-token", profile: &model.StaffProfile{Name: "Mr. Kumar"}}
	svc := newSessionService(newMemorySessionStore(), auth, now)

	sess, err := svc.Login(context.Background(), 7, "kumar@college.edu", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Mr. Kumar", sess.StaffName)
	assert.Equal(t, now.Add(time.Hour), sess.ExpiresAt)
}

func TestLoginNameLookupFailureIsSilent(t *testing.T) {
	auth := &fakeAuth{token: "opaque-token", profileErr: api.ErrTransport}
	svc := newSessionService(newMemorySessionStore(), auth, time.Now())

	sess, err := svc.Login(context.Background(), 7, "kumar@college.edu", "pw")
	require.NoError(t, err)
	assert.Equal(t, "kumar@college.edu", sess.StaffName)
}

func TestLoginValidation(t *testing.T) {
	svc := newSessionService(newMemorySessionStore(), &fakeAuth{token: "t"}, time.Now())

	_, err := svc.Login(context.Background(), 7, "not-an-email", "pw")
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "email", invalid.Field)

	_, err = svc.Login(context.Background(), 7, "a@b.edu", "")
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "password", invalid.Field)
}

func TestLoginBackendRejection(t *testing.T) {
	store := newMemorySessionStore()
	svc := newSessionService(store, &fakeAuth{loginErr: api.ErrUnauthorized}, time.Now())

	_, err := svc.Login(context.Background(), 7, "a@b.edu", "pw")
	assert.ErrorIs(t, err, api.ErrUnauthorized)

	_, err = svc.Require(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRequireExpiredSessionTearsDown(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	store := newMemorySessionStore()
	svc := newSessionService(store, &fakeAuth{token: signedToken(t, now.Add(time.Minute))}, now)

	var torn []int64
	svc.OnTeardown(func(id int64) { torn = append(torn, id) })

	_, err := svc.Login(context.Background(), 7, "a@b.edu", "pw")
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err = svc.Require(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Equal(t, []int64{7}, torn)
}

func TestInvalidateOnlyOnUnauthorized(t *testing.T) {
	store := newMemorySessionStore()
	svc := newSessionService(store, &fakeAuth{token: "t"}, time.Now())
	_, err := svc.Login(context.Background(), 7, "a@b.edu", "pw")
	require.NoError(t, err)

	assert.False(t, svc.Invalidate(context.Background(), 7, errors.New("boom")))
	_, err = svc.Require(context.Background(), 7)
	assert.NoError(t, err)

	assert.True(t, svc.Invalidate(context.Background(), 7, api.ErrUnauthorized))
	_, err = svc.Require(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSweepExpired(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	store := newMemorySessionStore()
	svc := newSessionService(store, &fakeAuth{token: signedToken(t, now.Add(time.Minute))}, now)
	_, err := svc.Login(context.Background(), 1, "a@b.edu", "pw")
	require.NoError(t, err)

	svc.auth = &fakeAuth{token: signedToken(t, now.Add(time.Hour*5))}
	_, err = svc.Login(context.Background(), 2, "b@b.edu", "pw")
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(time.Hour) }
	dropped, err := svc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)

	_, err = svc.Require(context.Background(), 2)
	assert.NoError(t, err)
}

func TestTokenSealerRoundTrip(t *testing.T) {
	sealer := NewTokenSealer(testKey())
	sealed, err := sealer.Seal("bearer-123")
	require.NoError(t, err)

	plain, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "bearer-123", plain)

	sealed[len(sealed)-1] ^= 0xff
	_, err = sealer.Open(sealed)
	assert.Error(t, err)

	_, err = sealer.Open([]byte("short"))
	assert.Error(t, err)
}
