package services

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elite-motors/app/models"
	"elite-motors/app/repo"
	"elite-motors/app/store"
)

func newAccountService() (*AccountService, *repo.UserRepository, *repo.SessionRepository, store.KV) {
	kv := store.NewMemory()
	admin := models.User{Name: "Administrador", Email: "admin@elitemotors.com.br", Password: "admin123"}
	users := repo.NewUserRepository(kv, admin)
	session := repo.NewSessionRepository(kv)
	s := NewAccountService(users, session, kv, zerolog.Nop())
	return s, users, session, kv
}

func validRegistration() RegisterInput {
	return RegisterInput{
		Name:            "Ana Souza",
		Email:           "ana@x.com",
		Phone:           "(11) 98888-7777",
		BirthDate:       "01/02/1990",
		PostalCode:      "01310-100",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestLoginValidatesFields(t *testing.T) {
	s, _, _, _ := newAccountService()
	_, err := s.Login("", "x")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = s.Login("a@x.com", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	s, _, _, _ := newAccountService()
	_, err := s.Register(validRegistration())
	require.NoError(t, err)

	_, wrongPass := s.Login("ana@x.com", "nope")
	_, unknown := s.Login("ghost@x.com", "nope")
	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)

	// ...but the reset flow does leak existence, and callers depend on
	// the distinct message. Pin the inconsistency.
	assert.ErrorIs(t, s.RequestPasswordReset("ghost@x.com"), ErrEmailNotFound)
}

func TestLoginSetsSessionAndRoutesOnAdminFlag(t *testing.T) {
	s, _, session, _ := newAccountService()

	u, err := s.Login("admin@elitemotors.com.br", "admin123")
	require.NoError(t, err)
	assert.True(t, u.Admin)
	require.NotNil(t, session.Get())
	assert.True(t, session.Get().Admin)
}

func TestRegisterDuplicateEmailLeavesDirectoryUntouched(t *testing.T) {
	s, users, _, _ := newAccountService()
	_, err := s.Register(validRegistration())
	require.NoError(t, err)
	before := users.All()

	dup := validRegistration()
	dup.Email = "ANA@X.COM"
	_, err = s.Register(dup)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, before, users.All())
}

func TestRegisterPasswordMismatch(t *testing.T) {
	s, _, _, _ := newAccountService()
	in := validRegistration()
	in.ConfirmPassword = "other"
	_, err := s.Register(in)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestRegisterRequiresEveryField(t *testing.T) {
	s, _, _, _ := newAccountService()
	in := validRegistration()
	in.Phone = ""
	_, err := s.Register(in)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestRegisterCreatesSessionedNonAdmin(t *testing.T) {
	s, _, session, _ := newAccountService()
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	u, err := s.Register(validRegistration())
	require.NoError(t, err)
	assert.EqualValues(t, 1700000000000, u.ID)
	assert.False(t, u.Admin)
	require.NotNil(t, session.Get())
	assert.Equal(t, "ana@x.com", session.Get().Email)
}

func TestPasswordResetForbiddenForAdmin(t *testing.T) {
	s, _, _, _ := newAccountService()
	err := s.RequestPasswordReset("ADMIN@elitemotors.com.br")
	assert.ErrorIs(t, err, ErrAdminResetForbidden)
}

func TestPasswordResetFlow(t *testing.T) {
	s, _, _, kv := newAccountService()
	_, err := s.Register(validRegistration())
	require.NoError(t, err)

	require.NoError(t, s.RequestPasswordReset("ana@x.com"))
	stash, ok, _ := kv.Get("resetEmail")
	require.True(t, ok)
	assert.Equal(t, "ana@x.com", stash)

	assert.ErrorIs(t, s.ConfirmPasswordReset("abcdef", "abcdeX"), ErrPasswordMismatch)
	assert.ErrorIs(t, s.ConfirmPasswordReset("abcde", "abcde"), ErrPasswordTooShort)

	require.NoError(t, s.ConfirmPasswordReset("abcdef", "abcdef"))
	_, ok, _ = kv.Get("resetEmail")
	assert.False(t, ok, "stash cleared after confirmation")

	_, err = s.Login("ana@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "old password no longer works")
	_, err = s.Login("ana@x.com", "abcdef")
	assert.NoError(t, err)
}

// fakeCredential builds an unsigned three-part token the way an
// identity provider would shape it; the signature segment is noise
// because nothing verifies it.
func fakeCredential(t *testing.T, payload map[string]any) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "RS256", "typ": "JWT"})
	require.NoError(t, err)
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(body) + "." + enc.EncodeToString([]byte("sig"))
}

func TestGoogleSignInCreatesPasswordlessAccount(t *testing.T) {
	s, users, session, _ := newAccountService()
	cred := fakeCredential(t, map[string]any{
		"email":   "carlos@gmail.com",
		"name":    "Carlos Lima",
		"picture": "https://example.com/p.jpg",
	})

	u, err := s.GoogleSignIn(cred)
	require.NoError(t, err)
	assert.Equal(t, "carlos@gmail.com", u.Email)
	assert.Empty(t, u.Password)
	assert.Equal(t, "https://example.com/p.jpg", u.Photo)
	require.NotNil(t, session.Get())

	// second sign-in finds the same account instead of duplicating it
	again, err := s.GoogleSignIn(cred)
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)
	assert.Len(t, users.All(), 2) // admin + carlos
}

func TestGoogleSignInRejectsMalformedCredential(t *testing.T) {
	s, _, session, _ := newAccountService()
	_, err := s.GoogleSignIn("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, session.Get())
}
