package service

import (
	"context"
	"testing"

	"barterly/internal/cache"
	"barterly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserServiceRegister(t *testing.T) {
	t.Run("Hashes the password", func(t *testing.T) {
		userRepo := noopUserRepo()
		var created *models.User
		userRepo.createFn = func(_ context.Context, u *models.User) error {
			u.ID = 1
			created = u
			return nil
		}
		svc := NewUserService(userRepo, noopSkillRepo())

		user, err := svc.Register(context.Background(), "skill_swapper", "sarah@example.com", "SecurePass12!@")
		require.NoError(t, err)
		assert.NotEqual(t, "SecurePass12!@", created.Password)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("SecurePass12!@")))
	})

	t.Run("Duplicate email", func(t *testing.T) {
		userRepo := noopUserRepo()
		userRepo.getByEmailFn = func(context.Context, string) (*models.User, error) {
			return &models.User{ID: 2}, nil
		}
		svc := NewUserService(userRepo, noopSkillRepo())

		_, err := svc.Register(context.Background(), "skill_swapper", "sarah@example.com", "SecurePass12!@")
		require.Error(t, err)
		assert.True(t, models.IsCode(err, models.CodeConflict))
	})

	t.Run("Weak password", func(t *testing.T) {
		svc := NewUserService(noopUserRepo(), noopSkillRepo())

		_, err := svc.Register(context.Background(), "skill_swapper", "sarah@example.com", "short")
		require.Error(t, err)
		assert.True(t, models.IsCode(err, models.CodeValidation))
	})
}

func TestUserServiceAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("SecurePass12!@"), bcrypt.MinCost)
	require.NoError(t, err)
	known := &models.User{ID: 1, Email: "sarah@example.com", Password: string(hash)}

	t.Run("Valid credentials", func(t *testing.T) {
		userRepo := noopUserRepo()
		userRepo.getByEmailFn = func(context.Context, string) (*models.User, error) { return known, nil }
		svc := NewUserService(userRepo, noopSkillRepo())

		user, err := svc.Authenticate(context.Background(), "sarah@example.com", "SecurePass12!@")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo := noopUserRepo()
		userRepo.getByEmailFn = func(context.Context, string) (*models.User, error) { return known, nil }
		svc := NewUserService(userRepo, noopSkillRepo())

		_, err := svc.Authenticate(context.Background(), "sarah@example.com", "WrongPass12!@")
		require.Error(t, err)
		assert.True(t, models.IsCode(err, models.CodeAuthentication))
	})

	t.Run("Unknown email reads the same", func(t *testing.T) {
		svc := NewUserService(noopUserRepo(), noopSkillRepo())

		_, err := svc.Authenticate(context.Background(), "nobody@example.com", "SecurePass12!@")
		require.Error(t, err)
		assert.True(t, models.IsCode(err, models.CodeAuthentication))
	})
}

func TestUserServiceGetCaching(t *testing.T) {
	withTestCache(t)
	ctx := context.Background()

	calls := 0
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		calls++
		return &models.User{ID: id, Username: "mentor", Email: "mentor@example.com"}, nil
	}
	svc := NewUserService(userRepo, noopSkillRepo())

	first, err := svc.Get(ctx, 5)
	require.NoError(t, err)
	second, err := svc.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "second read should hit the cache")
	assert.Equal(t, first.Username, second.Username)
	assert.Equal(t, first.AvatarKey(), second.AvatarKey())

	cache.InvalidateUser(ctx, 5)
	_, err = svc.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "invalidation should force a fresh read")
}

func TestUserServiceReplaceSkills(t *testing.T) {
	t.Run("Within the cap", func(t *testing.T) {
		userRepo := noopUserRepo()
		var saved []uint
		userRepo.replaceSkillsFn = func(_ context.Context, _ uint, ids []uint) error {
			saved = ids
			return nil
		}
		svc := NewUserService(userRepo, catalogWith(1, 2, 3))

		require.NoError(t, svc.ReplaceSkills(context.Background(), 7, []uint{1, 2, 3}))
		assert.Equal(t, []uint{1, 2, 3}, saved)
	})

	t.Run("Over the cap", func(t *testing.T) {
		svc := NewUserService(noopUserRepo(), catalogWith(1, 2, 3, 4))

		err := svc.ReplaceSkills(context.Background(), 7, []uint{1, 2, 3, 4})
		require.Error(t, err)
		assert.True(t, models.IsCode(err, models.CodeValidation))
	})

	t.Run("Unknown skill", func(t *testing.T) {
		svc := NewUserService(noopUserRepo(), catalogWith(1))

		err := svc.ReplaceSkills(context.Background(), 7, []uint{1, 99})
		require.Error(t, err)
		assert.True(t, models.IsCode(err, models.CodeValidation))
	})
}
