package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// ClientService manages client accounts: registration, login and token
// verification. Clients log in with "first.last" plus a password; the
// password is stored as a bcrypt hash and successful auth yields a signed
// HS256 token.
type ClientService struct {
	clients ClientStore
	secret  []byte
	logger  *zap.Logger
}

func NewClientService(clients ClientStore, jwtSecret string, logger *zap.Logger) *ClientService {
	return &ClientService{
		clients: clients,
		secret:  []byte(jwtSecret),
		logger:  logger,
	}
}

// Register creates a client account and returns it with a fresh token.
func (s *ClientService) Register(ctx context.Context, firstName, lastName string, birthDate time.Time, experience model.Experience, password string) (*model.Client, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	client := &model.Client{
		ID:           uuid.New(),
		FirstName:    firstName,
		LastName:     lastName,
		BirthDate:    birthDate,
		Experience:   experience,
		PasswordHash: string(hash),
	}

	if err := s.clients.Create(ctx, client); err != nil {
		return nil, "", fmt.Errorf("create client: %w", err)
	}

	token, err := s.generateToken(client)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("Client registered",
		zap.String("client_id", client.ID.String()),
		zap.String("name", client.FullName()),
	)

	return client, token, nil
}

// Authenticate checks "first.last" + password and returns a signed token.
// Every failure mode maps to ErrInvalidCredentials so the response does not
// leak which part was wrong.
func (s *ClientService) Authenticate(ctx context.Context, fullName, password string) (string, error) {
	firstName, lastName, ok := strings.Cut(fullName, ".")
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if !ok || firstName == "" || lastName == "" {
		return "", ErrInvalidCredentials
	}

	client, err := s.clients.GetByName(ctx, firstName, lastName)
	if err != nil {
		return "", fmt.Errorf("get client by name: %w", err)
	}
	if client == nil {
		return "", ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(client)
}

// GetClientByID returns the client or ErrClientNotFound.
func (s *ClientService) GetClientByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	return client, nil
}

// VerifyToken validates a token and returns the client id it carries.
func (s *ClientService) VerifyToken(token string) (uuid.UUID, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrInvalidCredentials
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidCredentials
	}
	idClaim, ok := claims["id"].(string)
	if !ok {
		return uuid.Nil, ErrInvalidCredentials
	}
	clientID, err := uuid.Parse(idClaim)
	if err != nil {
		return uuid.Nil, ErrInvalidCredentials
	}

	return clientID, nil
}

func (s *ClientService) generateToken(client *model.Client) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":         client.ID.String(),
		"firstName":  client.FirstName,
		"lastName":   client.LastName,
		"experience": string(client.Experience),
		"sub":        client.FirstName + "." + client.LastName,
		"iat":        now.Unix(),
		"exp":        now.Add(tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}
