package usecase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/oplata-app/escrow-service/internal/domain"
	identitydto "github.com/oplata-app/escrow-service/internal/usecase/dto/identity"
)

func TestLoginCreatesAndReusesUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewDefaultIdentityUsecase(repo, "test-secret", "")

	first, err := uc.Login(identitydto.LoginInput{TelegramID: 42, Username: "alice"})
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	if first.Token == "" {
		t.Fatal("expected token, got empty string")
	}
	if first.User.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %s", first.User.Role)
	}

	second, err := uc.Login(identitydto.LoginInput{TelegramID: 42})
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if second.User.ID != first.User.ID {
		t.Fatalf("expected same user id, got %q and %q", first.User.ID, second.User.ID)
	}
	// Blank username does not clear the stored one.
	if second.User.Username != "alice" {
		t.Fatalf("expected username alice, got %q", second.User.Username)
	}

	// Latest non-empty value wins.
	third, err := uc.Login(identitydto.LoginInput{TelegramID: 42, Username: "alice_new", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("third login: %v", err)
	}
	if third.User.Username != "alice_new" || third.User.Email != "a@example.com" {
		t.Fatalf("profile not updated: %+v", third.User)
	}

	userID, telegramID, err := uc.VerifyToken(first.Token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if userID != first.User.ID || telegramID != 42 {
		t.Fatalf("unexpected token claims: %q %d", userID, telegramID)
	}
}

func TestLoginRequiresTelegramID(t *testing.T) {
	uc := NewDefaultIdentityUsecase(newFakeUserRepo(), "test-secret", "")
	if _, err := uc.Login(identitydto.LoginInput{Username: "alice"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestGetUserByTelegramIDNotFound(t *testing.T) {
	uc := NewDefaultIdentityUsecase(newFakeUserRepo(), "test-secret", "")
	if _, err := uc.GetUserByTelegramID(99); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func telegramHash(botToken string, data map[string]string) string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, key+"="+data[key])
	}
	secretKey := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secretKey[:])
	mac.Write([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestLoginVerifiesTelegramAuthData(t *testing.T) {
	const botToken = "123456:bot-token"
	uc := NewDefaultIdentityUsecase(newFakeUserRepo(), "test-secret", botToken)

	fields := map[string]string{
		"id":         "42",
		"first_name": "Alice",
		"auth_date":  "1700000000",
	}
	authData := map[string]string{"hash": telegramHash(botToken, fields)}
	for key, value := range fields {
		authData[key] = value
	}

	if _, err := uc.Login(identitydto.LoginInput{TelegramID: 42, AuthData: authData}); err != nil {
		t.Fatalf("valid auth data rejected: %v", err)
	}

	authData["hash"] = "deadbeef"
	if _, err := uc.Login(identitydto.LoginInput{TelegramID: 42, AuthData: authData}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad hash, got %v", err)
	}
}

// Verification is skipped entirely when no bot token is configured.
func TestLoginSkipsVerificationWithoutBotToken(t *testing.T) {
	uc := NewDefaultIdentityUsecase(newFakeUserRepo(), "test-secret", "")
	authData := map[string]string{"id": "42", "hash": "whatever"}
	if _, err := uc.Login(identitydto.LoginInput{TelegramID: 42, AuthData: authData}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
