package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/EleazarRosete/lolos-place-backend/internal/services/users/domain"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/users/repository"
)

type fakeUsersRepo struct {
	users map[string]domain.User

	createdUser domain.User
	newPassword string
	newEmail    string
}

func newFakeUsersRepo(users ...domain.User) *fakeUsersRepo {
	f := &fakeUsersRepo{users: map[string]domain.User{}}
	for _, u := range users {
		f.users[u.Email] = u
	}
	return f
}

func (f *fakeUsersRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	user.UserID = 101
	f.createdUser = user
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (domain.User, bool, error) {
	u, ok := f.users[email]
	return u, ok, nil
}

func (f *fakeUsersRepo) GetByIdentifier(_ context.Context, identifier string) (domain.User, bool, error) {
	if u, ok := f.users[identifier]; ok {
		return u, true, nil
	}
	for _, u := range f.users {
		if u.Phone == identifier {
			return u, true, nil
		}
	}
	return domain.User{}, false, nil
}

func (f *fakeUsersRepo) GetByID(_ context.Context, userID int) (domain.User, error) {
	for _, u := range f.users {
		if u.UserID == userID {
			return u, nil
		}
	}
	return domain.User{}, repository.ErrNotFound
}

func (f *fakeUsersRepo) UpdatePassword(_ context.Context, _ int, hash string) error {
	f.newPassword = hash
	return nil
}

func (f *fakeUsersRepo) UpdateDetails(_ context.Context, _ int, email, _, _ string) error {
	f.newEmail = email
	return nil
}

type fakeOTP struct {
	code      string
	issueErr  error
	verifyOK  bool
	verifyErr error
}

func (f *fakeOTP) Issue(context.Context, string) (string, error) { return f.code, f.issueErr }
func (f *fakeOTP) Verify(context.Context, string, string) (bool, error) {
	return f.verifyOK, f.verifyErr
}

type fakeMailer struct {
	sentTo   string
	sentCode string
	err      error
}

func (f *fakeMailer) SendOTP(to, code string) error {
	f.sentTo, f.sentCode = to, code
	return f.err
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(hash)
}

func existingUser(t *testing.T) domain.User {
	return domain.User{
		UserID:    3,
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		Address:   "123 Rizal St",
		Email:     "juan@example.com",
		Phone:     "09171234567",
		Password:  hashOf(t, "secret123"),
	}
}

func newTestService(repo *fakeUsersRepo, otp *fakeOTP, mailer *fakeMailer) *UsersService {
	return NewUsersService(repo, otp, mailer, zap.NewNop())
}

func TestSignup(t *testing.T) {
	t.Run("success hashes password", func(t *testing.T) {
		repo := newFakeUsersRepo()
		svc := newTestService(repo, &fakeOTP{}, &fakeMailer{})

		user, err := svc.Signup(context.Background(), domain.SignupRequest{
			FirstName: "Juan", LastName: "Dela Cruz",
			Email: "juan@example.com", Password: "secret123",
		})
		if err != nil {
			t.Fatalf("Signup: %v", err)
		}
		if user.UserID != 101 {
			t.Errorf("user id = %d", user.UserID)
		}
		if repo.createdUser.Password == "secret123" {
			t.Error("password stored in plain text")
		}
		if bcrypt.CompareHashAndPassword([]byte(repo.createdUser.Password), []byte("secret123")) != nil {
			t.Error("stored hash does not verify")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeUsersRepo(existingUser(t))
		svc := newTestService(repo, &fakeOTP{}, &fakeMailer{})

		_, err := svc.Signup(context.Background(), domain.SignupRequest{
			FirstName: "Juan", LastName: "Dela Cruz",
			Email: "juan@example.com", Password: "secret123",
		})
		if !errors.Is(err, ErrUserExists) {
			t.Fatalf("err = %v, want ErrUserExists", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := newTestService(newFakeUsersRepo(), &fakeOTP{}, &fakeMailer{})
		_, err := svc.Signup(context.Background(), domain.SignupRequest{Email: "x@example.com"})
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("err = %v, want ErrInvalidRequest", err)
		}
	})
}

func TestLogin(t *testing.T) {
	repo := newFakeUsersRepo(existingUser(t))
	svc := newTestService(repo, &fakeOTP{}, &fakeMailer{})
	ctx := context.Background()

	t.Run("by email", func(t *testing.T) {
		result, err := svc.Login(ctx, domain.LoginRequest{Identifier: "juan@example.com", Password: "secret123"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if result.FullName != "Juan Dela Cruz" || result.ID != 3 {
			t.Errorf("result = %+v", result)
		}
	})

	t.Run("by phone", func(t *testing.T) {
		if _, err := svc.Login(ctx, domain.LoginRequest{Identifier: "09171234567", Password: "secret123"}); err != nil {
			t.Fatalf("Login by phone: %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.LoginRequest{Identifier: "juan@example.com", Password: "wrong"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.LoginRequest{Identifier: "nobody@example.com", Password: "secret123"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := newFakeUsersRepo(existingUser(t))
		svc := newTestService(repo, &fakeOTP{}, &fakeMailer{})

		err := svc.ChangePassword(ctx, domain.ChangePasswordRequest{
			ID: 3, OldPassword: "secret123",
			NewPassword: "newpass456", ConfirmNewPassword: "newpass456",
		})
		if err != nil {
			t.Fatalf("ChangePassword: %v", err)
		}
		if bcrypt.CompareHashAndPassword([]byte(repo.newPassword), []byte("newpass456")) != nil {
			t.Error("new hash does not verify")
		}
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		svc := newTestService(newFakeUsersRepo(existingUser(t)), &fakeOTP{}, &fakeMailer{})
		err := svc.ChangePassword(ctx, domain.ChangePasswordRequest{
			ID: 3, OldPassword: "secret123",
			NewPassword: "newpass456", ConfirmNewPassword: "different",
		})
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("err = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("wrong old password", func(t *testing.T) {
		svc := newTestService(newFakeUsersRepo(existingUser(t)), &fakeOTP{}, &fakeMailer{})
		err := svc.ChangePassword(ctx, domain.ChangePasswordRequest{
			ID: 3, OldPassword: "wrong",
			NewPassword: "newpass456", ConfirmNewPassword: "newpass456",
		})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newTestService(newFakeUsersRepo(), &fakeOTP{}, &fakeMailer{})
		err := svc.ChangePassword(ctx, domain.ChangePasswordRequest{
			ID: 77, OldPassword: "secret123",
			NewPassword: "newpass456", ConfirmNewPassword: "newpass456",
		})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestSendOTP(t *testing.T) {
	t.Run("delivers issued code", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := newTestService(newFakeUsersRepo(), &fakeOTP{code: "123456"}, mailer)

		if err := svc.SendOTP(context.Background(), "juan@example.com"); err != nil {
			t.Fatalf("SendOTP: %v", err)
		}
		if mailer.sentTo != "juan@example.com" || mailer.sentCode != "123456" {
			t.Errorf("sent to %q code %q", mailer.sentTo, mailer.sentCode)
		}
	})

	t.Run("mail failure surfaced", func(t *testing.T) {
		svc := newTestService(newFakeUsersRepo(), &fakeOTP{code: "123456"}, &fakeMailer{err: errors.New("smtp down")})
		if err := svc.SendOTP(context.Background(), "juan@example.com"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestVerifyOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		svc := newTestService(newFakeUsersRepo(), &fakeOTP{verifyOK: true}, &fakeMailer{})
		if err := svc.VerifyOTP(ctx, "juan@example.com", "123456"); err != nil {
			t.Fatalf("VerifyOTP: %v", err)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		svc := newTestService(newFakeUsersRepo(), &fakeOTP{verifyOK: false}, &fakeMailer{})
		if err := svc.VerifyOTP(ctx, "juan@example.com", "000000"); !errors.Is(err, ErrInvalidOTP) {
			t.Fatalf("err = %v, want ErrInvalidOTP", err)
		}
	})

	t.Run("missing code", func(t *testing.T) {
		svc := newTestService(newFakeUsersRepo(), &fakeOTP{}, &fakeMailer{})
		if err := svc.VerifyOTP(ctx, "juan@example.com", ""); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("err = %v, want ErrInvalidRequest", err)
		}
	})
}
