package user_test

import (
	"context"
	"testing"

	"go-leave/internal/user"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	createFn      func(ctx context.Context, u *user.User) error
	findByIDFn    func(ctx context.Context, id uint) (*user.User, error)
	findByEmailFn func(ctx context.Context, email string) (*user.User, error)
	findAllFn     func(ctx context.Context) ([]user.User, error)
	updateFn      func(ctx context.Context, u *user.User) error
}

func (f *fakeUserRepository) WithTx(tx *gorm.DB) user.Repository { return f }

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindAll(ctx context.Context) ([]user.User, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

func TestUserService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success omits password", func(t *testing.T) {
		repo := &fakeUserRepository{
			findAllFn: func(ctx context.Context) ([]user.User, error) {
				return []user.User{
					{ID: 1, Name: "Ayu", Email: "ayu@example.com", Role: user.RoleAdmin, Password: "hash"},
				}, nil
			},
		}
		svc := user.NewService(repo)

		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Ayu", resp[0].Name)
		assert.Equal(t, user.RoleAdmin, resp[0].Role)
	})
}

func TestUserService_UpdateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes case", func(t *testing.T) {
		var saved *user.User
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
				return &user.User{ID: id, Name: "Budi", Role: user.RoleEmployee}, nil
			},
			updateFn: func(ctx context.Context, u *user.User) error {
				saved = u
				return nil
			},
		}
		svc := user.NewService(repo)

		resp, err := svc.UpdateRole(ctx, 5, "manager")

		assert.NoError(t, err)
		assert.Equal(t, user.RoleManager, resp.Role)
		assert.NotNil(t, saved)
		assert.Equal(t, user.RoleManager, saved.Role)
	})

	t.Run("negative unknown role", func(t *testing.T) {
		svc := user.NewService(&fakeUserRepository{})

		_, err := svc.UpdateRole(ctx, 5, "SUPERVISOR")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must be one of EMPLOYEE, MANAGER, ADMIN")
	})

	t.Run("negative user not found", func(t *testing.T) {
		svc := user.NewService(&fakeUserRepository{})

		_, err := svc.UpdateRole(ctx, 5, user.RoleAdmin)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	currentHash, err := bcrypt.GenerateFromPassword([]byte("oldpass123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	newRepo := func(updateFn func(ctx context.Context, u *user.User) error) *fakeUserRepository {
		return &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
				return &user.User{ID: id, Password: string(currentHash)}, nil
			},
			updateFn: updateFn,
		}
	}

	t.Run("success rehashes", func(t *testing.T) {
		var saved *user.User
		svc := user.NewService(newRepo(func(ctx context.Context, u *user.User) error {
			saved = u
			return nil
		}))

		resp, err := svc.ChangePassword(ctx, 5, user.ChangePasswordRequest{
			CurrentPassword:    "oldpass123",
			NewPassword:        "newpass456",
			ConfirmNewPassword: "newpass456",
		})

		assert.NoError(t, err)
		assert.True(t, resp.Success)
		assert.NotNil(t, saved)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("newpass456")))
	})

	t.Run("negative confirmation mismatch", func(t *testing.T) {
		svc := user.NewService(newRepo(nil))

		_, err := svc.ChangePassword(ctx, 5, user.ChangePasswordRequest{
			CurrentPassword:    "oldpass123",
			NewPassword:        "newpass456",
			ConfirmNewPassword: "different",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "do not match")
	})

	t.Run("negative wrong current password", func(t *testing.T) {
		svc := user.NewService(newRepo(nil))

		_, err := svc.ChangePassword(ctx, 5, user.ChangePasswordRequest{
			CurrentPassword:    "wrong",
			NewPassword:        "newpass456",
			ConfirmNewPassword: "newpass456",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "current password")
	})

	t.Run("negative too short", func(t *testing.T) {
		svc := user.NewService(newRepo(nil))

		_, err := svc.ChangePassword(ctx, 5, user.ChangePasswordRequest{
			CurrentPassword:    "oldpass123",
			NewPassword:        "abc",
			ConfirmNewPassword: "abc",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 6 characters")
	})
}

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		in    string
		want  string
		valid bool
	}{
		{"EMPLOYEE", user.RoleEmployee, true},
		{"manager", user.RoleManager, true},
		{"Admin", user.RoleAdmin, true},
		{"SUPERVISOR", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := user.NormalizeRole(tc.in)
		assert.Equal(t, tc.valid, ok, tc.in)
		if tc.valid {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}
