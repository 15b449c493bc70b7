package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/security"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (UserService, *fakeUserRepo) {
	t.Helper()
	store := newTestStore(t)
	userRepo := newFakeUserRepo()
	return NewUserService(userRepo, store), userRepo
}

func TestRegister(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterDTO{Name: "Al", Password: "123456"})
		assert.ErrorIs(t, err, ErrFillAllFields)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterDTO{
			Name: "Al", Email: "a@b.com", Password: "12345", Password2: "12345",
		})
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("password mismatch", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterDTO{
			Name: "Al", Email: "a@b.com", Password: "123456", Password2: "654321",
		})
		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("success normalizes email", func(t *testing.T) {
		user, err := svc.Register(ctx, &dto.RegisterDTO{
			Name: "Al", Email: "Foo@Bar.com", Password: "123456", Password2: "123456",
		})
		require.NoError(t, err)
		assert.Equal(t, "foo@bar.com", user.Email)
		assert.Equal(t, 0, user.PostCount)

		fetched, err := svc.GetUserById(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Al", fetched.Name)
	})

	t.Run("duplicate email regardless of case", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterDTO{
			Name: "Bob", Email: "FOO@BAR.COM", Password: "123456", Password2: "123456",
		})
		assert.ErrorIs(t, err, ErrEmailRegistered)
	})
}

func TestLogin(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterDTO{
		Name: "Al", Email: "a@b.com", Password: "123456", Password2: "123456",
	})
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginDTO{Email: "nobody@b.com", Password: "123456"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginDTO{Email: "a@b.com", Password: "wrong-pass"})
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("success issues token with identity claims", func(t *testing.T) {
		result, err := svc.Login(ctx, &dto.LoginDTO{Email: "A@B.com", Password: "123456"})
		require.NoError(t, err)
		assert.Equal(t, "Al", result.Name)

		claims, err := security.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, result.ID, claims.UserID)
		assert.Equal(t, "Al", claims.Name)
	})
}

func TestEditUser(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	al, err := svc.Register(ctx, &dto.RegisterDTO{
		Name: "Al", Email: "al@b.com", Password: "123456", Password2: "123456",
	})
	require.NoError(t, err)
	bob, err := svc.Register(ctx, &dto.RegisterDTO{
		Name: "Bob", Email: "bob@b.com", Password: "123456", Password2: "123456",
	})
	require.NoError(t, err)

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.EditUser(ctx, al.ID, &dto.EditUserDTO{Name: "Al", Email: "al@b.com"})
		assert.ErrorIs(t, err, ErrFillAllFields)
	})

	t.Run("email owned by another user", func(t *testing.T) {
		_, err := svc.EditUser(ctx, al.ID, &dto.EditUserDTO{
			Name: "Al", Email: bob.Email,
			CurrentPassword: "123456", NewPassword: "654321", ConfirmNewPassword: "654321",
		})
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("wrong current password", func(t *testing.T) {
		_, err := svc.EditUser(ctx, al.ID, &dto.EditUserDTO{
			Name: "Al", Email: "al@b.com",
			CurrentPassword: "nope99", NewPassword: "654321", ConfirmNewPassword: "654321",
		})
		assert.ErrorIs(t, err, ErrCurrentPassword)
	})

	t.Run("new password mismatch", func(t *testing.T) {
		_, err := svc.EditUser(ctx, al.ID, &dto.EditUserDTO{
			Name: "Al", Email: "al@b.com",
			CurrentPassword: "123456", NewPassword: "654321", ConfirmNewPassword: "123123",
		})
		assert.ErrorIs(t, err, ErrNewPasswordMismatch)
	})

	t.Run("success rotates credentials", func(t *testing.T) {
		updated, err := svc.EditUser(ctx, al.ID, &dto.EditUserDTO{
			Name: "Alfred", Email: "Alfred@B.com",
			CurrentPassword: "123456", NewPassword: "654321", ConfirmNewPassword: "654321",
		})
		require.NoError(t, err)
		assert.Equal(t, "Alfred", updated.Name)
		assert.Equal(t, "alfred@b.com", updated.Email)

		_, err = svc.Login(ctx, &dto.LoginDTO{Email: "alfred@b.com", Password: "654321"})
		assert.NoError(t, err)
	})
}

func TestChangeAvatar(t *testing.T) {
	svc, userRepo := newUserService(t)
	ctx := context.Background()

	al, err := svc.Register(ctx, &dto.RegisterDTO{
		Name: "Al", Email: "al@b.com", Password: "123456", Password2: "123456",
	})
	require.NoError(t, err)

	t.Run("no file", func(t *testing.T) {
		_, err := svc.ChangeAvatar(ctx, al.ID, nil)
		assert.ErrorIs(t, err, ErrNoImageChosen)
	})

	t.Run("too big", func(t *testing.T) {
		_, err := svc.ChangeAvatar(ctx, al.ID, &dto.UploadFileDTO{
			Name: "me.png", Size: 500001, Data: []byte{1},
		})
		assert.ErrorIs(t, err, ErrAvatarTooBig)
	})

	t.Run("success persists generated filename", func(t *testing.T) {
		fileName, err := svc.ChangeAvatar(ctx, al.ID, &dto.UploadFileDTO{
			Name: "me.png", Size: 3, Data: []byte("png"),
		})
		require.NoError(t, err)
		assert.Contains(t, fileName, "me")
		assert.Contains(t, fileName, ".png")

		stored, err := userRepo.GetUserById(ctx, al.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.Avatar)
		assert.Equal(t, fileName, *stored.Avatar)
	})
}

func TestGetAuthorsNeverExposesPasswordHash(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	for _, email := range []string{"a@b.com", "c@d.com"} {
		_, err := svc.Register(ctx, &dto.RegisterDTO{
			Name: "Author", Email: email, Password: "123456", Password2: "123456",
		})
		require.NoError(t, err)
	}

	authors, err := svc.GetAuthors(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	// dto.UserDTO 结构上就不包含密码哈希，这里断言序列化字段集
	assert.Equal(t, "a@b.com", authors[0].Email)
}
