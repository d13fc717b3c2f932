package auth

import (
	"context"
	"errors"
	"time"

	"peerlend/internal/domain/user"
	"peerlend/pkg/id"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// One error for unknown user and wrong password, on purpose.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Usecase struct {
	users    user.Repository
	secret   []byte
	tokenTTL time.Duration
}

func NewUsecase(users user.Repository, secret []byte, tokenTTL time.Duration) *Usecase {
	return &Usecase{users: users, secret: secret, tokenTTL: tokenTTL}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type Credentials struct {
	Identifier string `json:"identifier"` // email or phone
	Password   string `json:"password"`
}

type UserDTO struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Role   string `json:"role"`
}

type AuthResult struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	role := user.Role(in.Role)
	if in.Name == "" || in.Password == "" || !role.Valid() {
		return nil, ErrInvalidInput
	}
	if in.Email == "" && in.Phone == "" {
		return nil, ErrInvalidInput
	}

	for _, ident := range []string{in.Email, in.Phone} {
		if ident == "" {
			continue
		}
		_, err := u.users.GetByIdentifier(ctx, ident)
		switch {
		case err == nil:
			return nil, user.ErrDuplicateIdentity
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	rec := &user.User{
		UserID:       id.NewID32(),
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         role,
	}
	if in.Email != "" {
		rec.Email = &in.Email
	}
	if in.Phone != "" {
		rec.Phone = &in.Phone
	}

	if err := u.users.Create(ctx, rec); err != nil {
		return nil, err
	}

	token, err := u.signToken(rec)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: toDTO(rec)}, nil
}

func (u *Usecase) Login(ctx context.Context, in Credentials) (*AuthResult, error) {
	if in.Identifier == "" || in.Password == "" {
		return nil, ErrInvalidInput
	}

	rec, err := u.users.GetByIdentifier(ctx, in.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.signToken(rec)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: toDTO(rec)}, nil
}

func (u *Usecase) Me(ctx context.Context, userID string) (*UserDTO, error) {
	rec, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	dto := toDTO(rec)
	return &dto, nil
}

func (u *Usecase) signToken(rec *user.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  rec.UserID,
		"role": string(rec.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(u.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
}

func toDTO(rec *user.User) UserDTO {
	dto := UserDTO{UserID: rec.UserID, Name: rec.Name, Role: string(rec.Role)}
	if rec.Email != nil {
		dto.Email = *rec.Email
	}
	if rec.Phone != nil {
		dto.Phone = *rec.Phone
	}
	return dto
}
