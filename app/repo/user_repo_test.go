package repo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elite-motors/app/models"
	"elite-motors/app/store"
)

func testAdmin() models.User {
	return models.User{Name: "Administrador", Email: "admin@elitemotors.com.br", Password: "admin123"}
}

func newUserRepo() (*UserRepository, *store.Memory) {
	kv := store.NewMemory()
	return NewUserRepository(kv, testAdmin()), kv
}

func adminCount(users []models.User) int {
	n := 0
	for _, u := range users {
		if u.Admin {
			n++
		}
	}
	return n
}

func TestAllSynthesizesExactlyOneAdmin(t *testing.T) {
	r, _ := newUserRepo()

	users := r.All()
	require.Len(t, users, 1)
	assert.True(t, users[0].Admin)
	assert.EqualValues(t, 0, users[0].ID)

	require.NoError(t, r.Add(models.User{ID: 1, Name: "Ana", Email: "ana@x.com", Password: "secret1"}))
	users = r.All()
	require.Len(t, users, 2)
	assert.Equal(t, 1, adminCount(users))
	assert.True(t, users[0].Admin, "admin is prepended")
}

func TestAdminNeverPersisted(t *testing.T) {
	r, kv := newUserRepo()

	require.NoError(t, r.Save(r.All()))
	raw, ok, err := kv.Get("usuarios")
	require.NoError(t, err)
	require.True(t, ok)

	var persisted []models.User
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Empty(t, persisted, "synthetic admin must be stripped on save")
}

func TestSaveStripsAdminCaseInsensitively(t *testing.T) {
	r, kv := newUserRepo()

	require.NoError(t, r.Save([]models.User{
		{ID: 7, Email: "ADMIN@ELITEMOTORS.COM.BR", Admin: true},
		{ID: 8, Email: "bia@x.com"},
	}))

	raw, _, _ := kv.Get("usuarios")
	var persisted []models.User
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, "bia@x.com", persisted[0].Email)
}

func TestFindByEmailIsCaseInsensitive(t *testing.T) {
	r, _ := newUserRepo()
	require.NoError(t, r.Add(models.User{ID: 1, Email: "A@x.com", Name: "A"}))

	found := r.FindByEmail("a@X.COM")
	require.NotNil(t, found)
	assert.Equal(t, "A@x.com", found.Email)
	assert.True(t, r.Exists("a@x.com"))
	assert.Nil(t, r.FindByEmail("b@x.com"))
}

func TestUpdatePasswordSkipsAdmin(t *testing.T) {
	r, _ := newUserRepo()

	require.NoError(t, r.UpdatePassword("Admin@EliteMotors.com.br", "hacked"))
	admin := r.FindByEmail("admin@elitemotors.com.br")
	require.NotNil(t, admin)
	assert.Equal(t, "admin123", admin.Password, "admin password is fixed")
}

func TestUpdatePasswordRewritesRegularUser(t *testing.T) {
	r, _ := newUserRepo()
	require.NoError(t, r.Add(models.User{ID: 1, Email: "ana@x.com", Password: "before"}))

	require.NoError(t, r.UpdatePassword("ANA@X.COM", "after1"))
	u := r.FindByEmail("ana@x.com")
	require.NotNil(t, u)
	assert.Equal(t, "after1", u.Password)
}
