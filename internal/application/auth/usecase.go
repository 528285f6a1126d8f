package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/domain"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/repository"
	"github.com/stoneworks/inventory-api/pkg/jwt"
	"github.com/stoneworks/inventory-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase alta y login de operadores.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log}
}

// RegisterUser crea un operador con la password hasheada con bcrypt.
// Solo un operador autenticado (callerID) puede dar de alta a otro, salvo el primero.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest, callerID string) (*dto.UserResponse, error) {
	if callerID == "" {
		n, err := uc.userRepo.Count(ctx)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, domain.ErrUnauthorized
		}
	}
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if username == "" {
		return nil, domain.Invalid("username is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = username
	}
	user := &entity.User{
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
		Active:       true,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", username).Str("created_by", callerID).Msg("operador registrado")
	return toUserResponse(user), nil
}

// Login verifica username/password y genera el JWT.
// Usuario inexistente, password incorrecta o cuenta inactiva dan el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.ToLower(strings.TrimSpace(in.Username)))
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
