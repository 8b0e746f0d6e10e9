package repo

import (
	"strings"

	"elite-motors/app/models"
	"elite-motors/app/store"
)

// UserRepository is the directory of registered accounts plus one
// built-in administrator. The administrator lives only in memory: All
// synthesizes it when missing and Save strips it before persisting, so
// the backing value never contains it.
type UserRepository struct {
	kv    store.KV
	admin models.User
}

func NewUserRepository(kv store.KV, admin models.User) *UserRepository {
	admin.ID = 0
	admin.Admin = true
	return &UserRepository{kv: kv, admin: admin}
}

// BuiltInAdmin returns a copy of the synthetic administrator record.
func (r *UserRepository) BuiltInAdmin() models.User { return r.admin }

// IsBuiltInAdmin is the single place that decides whether a record is
// the synthetic administrator.
func (r *UserRepository) IsBuiltInAdmin(u models.User) bool {
	return strings.EqualFold(u.Email, r.admin.Email)
}

func (r *UserRepository) All() []models.User {
	users := store.Read(r.kv, keyUsers, []models.User{})
	for _, u := range users {
		if r.IsBuiltInAdmin(u) {
			return users
		}
	}
	return append([]models.User{r.admin}, users...)
}

func (r *UserRepository) Save(users []models.User) error {
	kept := make([]models.User, 0, len(users))
	for _, u := range users {
		if r.IsBuiltInAdmin(u) {
			continue
		}
		kept = append(kept, u)
	}
	return store.Write(r.kv, keyUsers, kept)
}

func (r *UserRepository) FindByEmail(email string) *models.User {
	for _, u := range r.All() {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found
		}
	}
	return nil
}

func (r *UserRepository) Exists(email string) bool {
	return r.FindByEmail(email) != nil
}

// Add persists u without checking uniqueness; callers validate first.
func (r *UserRepository) Add(u models.User) error {
	return r.Save(append(r.All(), u))
}

// UpdatePassword rewrites the password of the matching account. The
// built-in administrator is skipped silently: its password is fixed.
func (r *UserRepository) UpdatePassword(email, newPassword string) error {
	users := r.All()
	for i, u := range users {
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		if r.IsBuiltInAdmin(u) {
			return nil
		}
		users[i].Password = newPassword
		return r.Save(users)
	}
	return nil
}
