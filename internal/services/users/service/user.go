package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/EleazarRosete/lolos-place-backend/internal/services/users/domain"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/users/repository"
)

const bcryptCost = 10

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid OTP")
)

type UsersServiceInterface interface {
	Signup(ctx context.Context, req domain.SignupRequest) (domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResult, error)
	ChangePassword(ctx context.Context, req domain.ChangePasswordRequest) error
	ChangeDetails(ctx context.Context, req domain.ChangeDetailsRequest) error
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
}

// OTPStore issues and consumes one-time signup codes.
type OTPStore interface {
	Issue(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, email, code string) (bool, error)
}

// OTPMailer delivers the code to the customer.
type OTPMailer interface {
	SendOTP(to, code string) error
}

type UsersService struct {
	repo   repository.UsersRepositoryInterface
	otp    OTPStore
	mailer OTPMailer
	lg     *zap.Logger
}

func NewUsersService(repo repository.UsersRepositoryInterface, otp OTPStore, mailer OTPMailer, lg *zap.Logger) *UsersService {
	return &UsersService{repo: repo, otp: otp, mailer: mailer, lg: lg}
}

func (s *UsersService) Signup(ctx context.Context, req domain.SignupRequest) (domain.User, error) {
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return domain.User{}, fmt.Errorf("%w: missing required fields", ErrInvalidRequest)
	}

	_, exists, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return domain.User{}, err
	}
	if exists {
		return domain.User{}, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, domain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  string(hash),
	})
	if err != nil {
		return domain.User{}, err
	}

	s.lg.Info("user_signed_up", zap.Int("user_id", user.UserID))
	return user, nil
}

// Login resolves the identifier as email or phone. Both unknown users and
// wrong passwords yield the same generic rejection.
func (s *UsersService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResult, error) {
	if req.Identifier == "" || req.Password == "" {
		return domain.LoginResult{}, fmt.Errorf("%w: identifier and password are required", ErrInvalidRequest)
	}

	user, exists, err := s.repo.GetByIdentifier(ctx, req.Identifier)
	if err != nil {
		return domain.LoginResult{}, err
	}
	if !exists {
		return domain.LoginResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return domain.LoginResult{}, ErrInvalidCredentials
	}

	return domain.LoginResult{
		FullName: user.FirstName + " " + user.LastName,
		Address:  user.Address,
		Phone:    user.Phone,
		Email:    user.Email,
		ID:       user.UserID,
	}, nil
}

func (s *UsersService) ChangePassword(ctx context.Context, req domain.ChangePasswordRequest) error {
	if req.ID <= 0 || req.OldPassword == "" || req.NewPassword == "" || req.ConfirmNewPassword == "" {
		return fmt.Errorf("%w: all fields are required", ErrInvalidRequest)
	}
	if req.NewPassword != req.ConfirmNewPassword {
		return fmt.Errorf("%w: new and confirm password do not match", ErrInvalidRequest)
	}

	user, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, req.ID, string(hash))
}

func (s *UsersService) ChangeDetails(ctx context.Context, req domain.ChangeDetailsRequest) error {
	if req.ID <= 0 || req.Email == "" || req.Phone == "" || req.Address == "" {
		return fmt.Errorf("%w: all fields are required", ErrInvalidRequest)
	}
	if _, err := s.repo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return s.repo.UpdateDetails(ctx, req.ID, req.Email, req.Phone, req.Address)
}

func (s *UsersService) SendOTP(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidRequest)
	}
	code, err := s.otp.Issue(ctx, email)
	if err != nil {
		return err
	}
	if err := s.mailer.SendOTP(email, code); err != nil {
		return fmt.Errorf("send otp email: %w", err)
	}
	s.lg.Info("otp_sent", zap.String("email", email))
	return nil
}

func (s *UsersService) VerifyOTP(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return fmt.Errorf("%w: email and OTP are required", ErrInvalidRequest)
	}
	ok, err := s.otp.Verify(ctx, email, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidOTP
	}
	return nil
}
