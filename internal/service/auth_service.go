package service

import (
	"github.com/gmorandi/parlaquiz/config"
	"github.com/rs/zerolog/log"
)

// AuthService checks the static API token carried by external callers.
type AuthService interface {
	ValidateToken(token string) bool
}

type authService struct {
	apiToken string
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{apiToken: cfg.APIToken}
}

func (s *authService) ValidateToken(token string) bool {
	if s.apiToken == "" {
		log.Error().Msg("No API token configured, rejecting all requests")
		return false
	}
	return token != "" && token == s.apiToken
}
