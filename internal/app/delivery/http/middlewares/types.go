package middlewares

import (
	"yuktah-service/internal/app/config"
	"yuktah-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	FacilityChecker contracts.FacilityStatusChecker
	InternalConfig  *config.InternalConfig
	Rules           []RouteRule
}

func NewMiddlewares(
	log *zap.Logger,
	facilityChecker contracts.FacilityStatusChecker,
	internalConfig *config.InternalConfig,
	rules []RouteRule,
) *Middlewares {
	return &Middlewares{
		Log:             log,
		FacilityChecker: facilityChecker,
		InternalConfig:  internalConfig,
		Rules:           rules,
	}
}
