package services

import (
	"errors"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/sonomandeep/Moon/config"
	"github.com/sonomandeep/Moon/models"
	"github.com/sonomandeep/Moon/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register stores a new user with a hashed password. Username and email are
// case-normalized before hitting the database; uniqueness is checked by the
// validation layer and backed by the unique constraints here.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	hashed, err := HashPassword(password)
	if err != nil {
		return nil, utils.NewInternalServerError()
	}

	user := models.User{
		Username: strings.ToLower(strings.TrimSpace(username)),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hashed,
	}

	// The validation layer already rejected duplicates; a constraint hit
	// here means a concurrent registration won the race.
	if err := s.DB.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "email") {
			return nil, utils.NewValidationError([]utils.FieldError{
				{Msg: "This email address is already taken", Param: "email"},
			})
		}
		return nil, utils.NewValidationError([]utils.FieldError{
			{Msg: "This username is already taken", Param: "username"},
		})
	}

	return &user, nil
}

// Login verifies the credentials and issues a fresh session token. The token
// is persisted on the user record, so a new login invalidates any session
// opened elsewhere.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	var user models.User
	err := s.DB.Where("username = ?", strings.ToLower(strings.TrimSpace(username))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", utils.NewNotFound("User not found")
	}
	if err != nil {
		return nil, "", utils.NewInternalServerError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", utils.NewBadCredentials("A user with this username/password combination does not exist")
	}

	token, err := s.generateToken(&user)
	if err != nil {
		return nil, "", utils.NewInternalServerError()
	}

	if err := s.DB.Model(&user).Update("jwt_token", token).Error; err != nil {
		return nil, "", utils.NewInternalServerError()
	}
	user.JwtToken = token

	return &user, token, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	// jti makes every issued token distinct, so a fresh login always
	// invalidates the previous session token.
	claims := jwt.MapClaims{
		"id":  user.ID,
		"exp": time.Now().Add(config.TokenLifetime).Unix(),
		"jti": uuid.New().String(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret())
}

// VerifyToken checks signature and expiry and returns the user id the token
// was issued for.
func VerifyToken(token string) (uint, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return config.JWTSecret(), nil
	})
	if err != nil || !parsed.Valid {
		return 0, utils.NewUnauthenticated("You must pass a valid token")
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return 0, utils.NewUnauthenticated("You must pass a valid token")
	}

	return uint(id), nil
}
