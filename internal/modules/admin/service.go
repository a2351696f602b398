package admin

import (
	"context"
	"fmt"

	jwtsvc "bamborapay/internal/pkg/jwt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	settings     settingsStore
	jwt          *jwtsvc.Service
	passwordHash string
	log          *zap.Logger
}

func NewService(settings settingsStore, jwt *jwtsvc.Service, passwordHash string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		settings:     settings,
		jwt:          jwt,
		passwordHash: passwordHash,
		log:          log,
	}
}

func (s *Service) Login(ctx context.Context, password string) (string, error) {
	if s.passwordHash == "" {
		return "", fmt.Errorf("admin password is not configured")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwt.GenerateToken("admin", "admin")
}

func (s *Service) GetConfig(ctx context.Context) (*ConfigModel, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &ConfigModel{
		MerchantID:              settings.MerchantID,
		HashKey:                 settings.HashKey,
		AdditionalFee:           settings.AdditionalFee.StringFixed(2),
		AdditionalFeePercentage: settings.AdditionalFeePercentage,
	}, nil
}

func (s *Service) UpdateConfig(ctx context.Context, model ConfigModel) error {
	fee, err := decimal.NewFromString(model.AdditionalFee)
	if err != nil {
		return fmt.Errorf("%w: additional_fee must be a decimal", ErrValidation)
	}
	if fee.IsNegative() {
		return fmt.Errorf("%w: additional_fee must not be negative", ErrValidation)
	}

	settings, err := s.settings.Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	settings.MerchantID = model.MerchantID
	settings.HashKey = model.HashKey
	settings.AdditionalFee = fee
	settings.AdditionalFeePercentage = model.AdditionalFeePercentage

	if err := s.settings.Save(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.log.Info("bambora settings updated", zap.String("merchant_id", settings.MerchantID))
	return nil
}
