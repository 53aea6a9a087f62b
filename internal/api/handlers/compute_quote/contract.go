package compute_quote

import (
	"context"

	pricingModels "github.com/hartvaneindhoven/HVE-BookingService/internal/service/pricing/models"
)

type PricingService interface {
	ComputeQuote(ctx context.Context, req *pricingModels.QuoteRequest) (*pricingModels.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
