package usecase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/oplata-app/escrow-service/internal/domain"
	identitydto "github.com/oplata-app/escrow-service/internal/usecase/dto/identity"
)

type IdentityUsecase interface {
	Login(input identitydto.LoginInput) (*identitydto.LoginOutput, error)
	GetUserByTelegramID(telegramID int64) (*domain.User, error)
	VerifyToken(tokenString string) (string, int64, error)
}

type DefaultIdentityUsecase struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
	botToken  string
}

func NewDefaultIdentityUsecase(userRepo domain.UserRepository, jwtSecret, botToken string) *DefaultIdentityUsecase {
	return &DefaultIdentityUsecase{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		botToken:  botToken,
	}
}

// Login finds or creates the user for the given Telegram identity. On repeat
// logins the latest non-empty username/email win; blank values never clear
// stored ones.
func (uc *DefaultIdentityUsecase) Login(input identitydto.LoginInput) (*identitydto.LoginOutput, error) {
	if input.TelegramID == 0 {
		return nil, domain.ErrValidation
	}

	if !uc.verifyTelegramAuth(input.AuthData) {
		return nil, fmt.Errorf("%w: telegram auth data hash mismatch", domain.ErrValidation)
	}

	user, err := uc.userRepo.GetUserByTelegramID(input.TelegramID)
	switch {
	case err == nil:
		if input.Username != "" || input.Email != "" {
			if err := uc.userRepo.UpdateProfile(user.ID, input.Username, input.Email); err != nil {
				return nil, err
			}
			if input.Username != "" {
				user.Username = input.Username
			}
			if input.Email != "" {
				user.Email = input.Email
			}
		}
	case err == domain.ErrUserNotFound:
		now := time.Now()
		user = &domain.User{
			ID:         uuid.NewString(),
			TelegramID: input.TelegramID,
			Username:   input.Username,
			Email:      input.Email,
			Role:       domain.RoleUser,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := uc.userRepo.CreateUser(user); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	token, err := uc.generateToken(user.ID, user.TelegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &identitydto.LoginOutput{User: user, Token: token}, nil
}

func (uc *DefaultIdentityUsecase) GetUserByTelegramID(telegramID int64) (*domain.User, error) {
	return uc.userRepo.GetUserByTelegramID(telegramID)
}

// 7-day HS256 token, no revocation.
func (uc *DefaultIdentityUsecase) generateToken(userID string, telegramID int64) (string, error) {
	claims := jwt.MapClaims{
		"userId":     userID,
		"telegramId": telegramID,
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(uc.jwtSecret)
}

func (uc *DefaultIdentityUsecase) VerifyToken(tokenString string) (string, int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return uc.jwtSecret, nil
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", 0, fmt.Errorf("invalid token")
	}
	userID, ok := claims["userId"].(string)
	if !ok {
		return "", 0, fmt.Errorf("invalid userId in token")
	}
	telegramID, ok := claims["telegramId"].(float64)
	if !ok {
		return "", 0, fmt.Errorf("invalid telegramId in token")
	}
	return userID, int64(telegramID), nil
}

// verifyTelegramAuth checks the Telegram login widget hash: all fields except
// "hash" are sorted, joined as k=v lines and HMAC-SHA256'd with
// SHA256(botToken) as the key. Verification is skipped when no bot token is
// configured or no auth data was sent.
func (uc *DefaultIdentityUsecase) verifyTelegramAuth(authData map[string]string) bool {
	if uc.botToken == "" || len(authData) == 0 {
		return true
	}

	receivedHash, ok := authData["hash"]
	if !ok {
		return false
	}

	keys := make([]string, 0, len(authData))
	for key := range authData {
		if key == "hash" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, key+"="+authData[key])
	}
	dataCheckString := strings.Join(lines, "\n")

	secretKey := sha256.Sum256([]byte(uc.botToken))
	mac := hmac.New(sha256.New, secretKey[:])
	mac.Write([]byte(dataCheckString))
	calculatedHash := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(calculatedHash), []byte(receivedHash))
}
