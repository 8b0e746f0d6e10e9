package services

import (
	"time"

	"github.com/rs/zerolog"

	"elite-motors/app/identity"
	"elite-motors/app/models"
	"elite-motors/app/repo"
	"elite-motors/app/store"
)

const minPasswordLen = 6

// resetEmail is stashed as a plain string, not JSON, matching the
// value the original site wrote.
const keyResetEmail = "resetEmail"

type RegisterInput struct {
	Name            string
	Email           string
	Phone           string
	BirthDate       string
	PostalCode      string
	Password        string
	ConfirmPassword string
}

// AccountService owns login, registration, password reset and the
// external sign-in flow. Passwords are compared in plaintext: the
// store this mirrors never hashed anything, and the reset flow's
// observable contract depends on byte equality.
type AccountService struct {
	users   *repo.UserRepository
	session *repo.SessionRepository
	kv      store.KV
	log     zerolog.Logger
	now     func() time.Time
}

func NewAccountService(users *repo.UserRepository, session *repo.SessionRepository, kv store.KV, log zerolog.Logger) *AccountService {
	return &AccountService{users: users, session: session, kv: kv, log: log, now: time.Now}
}

// Login collapses unknown-email and wrong-password into the same
// error so the form does not reveal which addresses are registered.
func (s *AccountService) Login(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}
	u := s.users.FindByEmail(email)
	if u == nil || u.Password != password {
		return nil, ErrInvalidCredentials
	}
	if err := s.session.Set(*u); err != nil {
		return nil, err
	}
	s.log.Info().Str("email", u.Email).Bool("admin", u.Admin).Msg("login")
	return u, nil
}

func (s *AccountService) Logout() {
	if err := s.session.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("clear session")
	}
}

func (s *AccountService) Register(in RegisterInput) (*models.User, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.BirthDate == "" ||
		in.PostalCode == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, ErrMissingFields
	}
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if s.users.Exists(in.Email) {
		return nil, ErrDuplicateEmail
	}
	u := models.User{
		ID:         s.now().UnixMilli(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		BirthDate:  in.BirthDate,
		PostalCode: in.PostalCode,
		Password:   in.Password,
	}
	if err := s.users.Add(u); err != nil {
		return nil, err
	}
	if err := s.session.Set(u); err != nil {
		return nil, err
	}
	s.log.Info().Str("email", u.Email).Msg("account registered")
	return &u, nil
}

// RequestPasswordReset validates the address and stashes it for the
// confirmation step. Unlike Login this does report whether the email
// exists; the original site leaked existence here and callers rely on
// the distinct message.
func (s *AccountService) RequestPasswordReset(email string) error {
	if email == "" {
		return ErrMissingFields
	}
	u := s.users.FindByEmail(email)
	if u == nil {
		return ErrEmailNotFound
	}
	if s.users.IsBuiltInAdmin(*u) {
		return ErrAdminResetForbidden
	}
	return s.kv.Set(keyResetEmail, u.Email)
}

func (s *AccountService) ConfirmPasswordReset(newPassword, confirmPassword string) error {
	if newPassword == "" || confirmPassword == "" {
		return ErrMissingFields
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if len(newPassword) < minPasswordLen {
		return ErrPasswordTooShort
	}
	email, ok, err := s.kv.Get(keyResetEmail)
	if err != nil || !ok || email == "" {
		return ErrEmailNotFound
	}
	if err := s.users.UpdatePassword(email, newPassword); err != nil {
		return err
	}
	if err := s.kv.Delete(keyResetEmail); err != nil {
		s.log.Warn().Err(err).Msg("clear reset stash")
	}
	s.log.Info().Str("email", email).Msg("password reset")
	return nil
}

// GoogleSignIn decodes the credential payload (unverified) and finds
// or creates a passwordless account for it.
func (s *AccountService) GoogleSignIn(credential string) (*models.User, error) {
	claims, err := identity.DecodeCredential(credential)
	if err != nil {
		return nil, err
	}
	u := s.users.FindByEmail(claims.Email)
	if u == nil {
		created := models.User{
			ID:    s.now().UnixMilli(),
			Name:  claims.Name,
			Email: claims.Email,
			Photo: claims.Picture,
		}
		if err := s.users.Add(created); err != nil {
			return nil, err
		}
		u = &created
		s.log.Info().Str("email", u.Email).Msg("account created from external identity")
	}
	if err := s.session.Set(*u); err != nil {
		return nil, err
	}
	return u, nil
}
