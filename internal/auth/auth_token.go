package auth

import (
	"errors"
	"fmt"
	"strings"

	autherrors "github.com/adeleke-taiwo/HR-LeaveFlow/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims mirrors the tokens issued by the auth service: userId, role and an
// optional departmentId.
type Claims struct {
	UserID       string  `json:"userId"`
	Role         string  `json:"role"`
	DepartmentID *string `json:"departmentId,omitempty"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify validates an HMAC signed token and turns its claims into an Identity.
func (v *Verifier) Verify(tokenString string) (Identity, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return Identity{}, autherrors.ErrTokenMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, autherrors.ErrTokenExpired.WithCause(err)
		}
		return Identity{}, autherrors.ErrInvalidToken.WithCause(err)
	}
	if !token.Valid {
		return Identity{}, autherrors.ErrInvalidToken
	}

	return claims.Identity()
}

func (c *Claims) Identity() (Identity, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return Identity{}, autherrors.ErrInvalidClaims
	}

	role := Role(c.Role)
	if !role.Valid() {
		return Identity{}, autherrors.ErrInvalidClaims
	}

	id := Identity{UserID: userID, Role: role}
	if c.DepartmentID != nil && *c.DepartmentID != "" {
		deptID, err := uuid.Parse(*c.DepartmentID)
		if err != nil {
			return Identity{}, autherrors.ErrInvalidClaims
		}
		id.DepartmentID = &deptID
	}

	return id, nil
}
