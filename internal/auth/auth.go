package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// Claims are the fields embedded in an issued token.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// User is the public view of an authenticated user.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Credential is one entry of the injected credential table.
type Credential struct {
	Password string
	Name     string
	Role     string
}

type account struct {
	passwordHash []byte
	name         string
	role         string
}

// Service issues and verifies signed, time-limited tokens against a fixed
// credential table supplied at construction.
type Service struct {
	secret   []byte
	ttl      time.Duration
	accounts map[string]account
}

// NewService hashes the supplied plaintext passwords once so login always
// compares via bcrypt.
func NewService(secret string, ttl time.Duration, creds map[string]Credential) (*Service, error) {
	accounts := make(map[string]account, len(creds))
	for email, c := range creds {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash credential for %s: %w", email, err)
		}
		accounts[strings.ToLower(email)] = account{passwordHash: hash, name: c.Name, role: c.Role}
	}
	return &Service{secret: []byte(secret), ttl: ttl, accounts: accounts}, nil
}

// Login checks the credential table and issues a token on match.
func (s *Service) Login(email, password string) (string, User, error) {
	acct, ok := s.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return "", User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)); err != nil {
		return "", User{}, ErrInvalidCredentials
	}

	user := User{Email: strings.ToLower(strings.TrimSpace(email)), Name: acct.name, Role: acct.role}
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", User{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, user, nil
}

// Verify checks signature and expiry, failing distinctly for expired versus
// malformed tokens.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
