package stubapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arifsetiawan/womshop/internal/client/models"
)

// account is a demo credential pair with its profile.
type account struct {
	password string
	user     models.User
}

// demoAccounts mirrors the well-known dummyjson test users.
var demoAccounts = map[string]account{
	"emilys": {
		password: "emilyspass",
		user: models.User{
			ID:        1,
			Username:  "emilys",
			Email:     "emily.johnson@x.dummyjson.com",
			FirstName: "Emily",
			LastName:  "Johnson",
			Image:     "https://dummyjson.com/icon/emilys/128",
		},
	},
	"michaelw": {
		password: "michaelwpass",
		user: models.User{
			ID:        2,
			Username:  "michaelw",
			Email:     "michael.williams@x.dummyjson.com",
			FirstName: "Michael",
			LastName:  "Williams",
			Image:     "https://dummyjson.com/icon/michaelw/128",
		},
	},
}

type loginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	ExpiresInMins int    `json:"expiresInMins"`
}

type loginResponse struct {
	models.User
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// claims carry the user identity inside the signed token.
type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// handleLogin handles POST /auth/login.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	acct, ok := demoAccounts[req.Username]
	if !ok || acct.password != req.Password {
		s.logger.Warn(r.Context(), "login rejected", "username", req.Username)
		writeError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	expiry := TokenExpiry
	if req.ExpiresInMins > 0 {
		expiry = time.Duration(req.ExpiresInMins) * time.Minute
	}

	access, err := s.issueToken(acct.user, expiry)
	if err != nil {
		s.logger.Error(r.Context(), "error signing access token", "error", err)
		writeError(w, http.StatusInternalServerError, "token signing failed")
		return
	}
	refresh, err := s.issueToken(acct.user, 24*time.Hour)
	if err != nil {
		s.logger.Error(r.Context(), "error signing refresh token", "error", err)
		writeError(w, http.StatusInternalServerError, "token signing failed")
		return
	}

	s.logger.Info(r.Context(), "login accepted", "username", req.Username)
	writeJSON(w, http.StatusOK, loginResponse{User: acct.user, AccessToken: access, RefreshToken: refresh})
}

// handleMe handles GET /auth/me, returning the profile of the bearer.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.authenticate(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Token Expired!")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) issueToken(user models.User, expiry time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			Issuer:    "womshop-stub",
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// authenticate validates the Authorization header and resolves the account.
func (s *Server) authenticate(r *http.Request) (*models.User, error) {
	raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if raw == "" || raw == r.Header.Get("Authorization") {
		return nil, fmt.Errorf("missing bearer token")
	}

	token, err := jwt.ParseWithClaims(raw, &claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	acct, ok := demoAccounts[c.Username]
	if !ok {
		return nil, fmt.Errorf("unknown account %q", c.Username)
	}
	user := acct.user
	return &user, nil
}
