package metrics

import (
	"context"

	domainerr "github.com/amirhossein-jamali/numduration/internal/domain/error"
	"github.com/amirhossein-jamali/numduration/internal/domain/port/usecase"
)

// Outcome labels of the conversions counter
const (
	OutcomeOK          = "ok"
	OutcomeOverflow    = "overflow"
	OutcomeClientError = "client_error"
	OutcomeError       = "error"
)

type instrumentedConversion struct {
	next    usecase.ConversionUseCase
	metrics *Metrics
}

// InstrumentConversion wraps a conversion use case so that every Convert and
// Shift call is counted by outcome
func InstrumentConversion(next usecase.ConversionUseCase, m *Metrics) usecase.ConversionUseCase {
	return &instrumentedConversion{next: next, metrics: m}
}

func (i *instrumentedConversion) Convert(ctx context.Context, req usecase.ConvertRequest) (*usecase.ConvertResult, error) {
	result, err := i.next.Convert(ctx, req)
	i.metrics.ObserveConversion("convert", outcome(err))
	return result, err
}

func (i *instrumentedConversion) Shift(ctx context.Context, req usecase.ShiftRequest) (*usecase.ShiftResult, error) {
	result, err := i.next.Shift(ctx, req)
	i.metrics.ObserveConversion("shift", outcome(err))
	return result, err
}

func (i *instrumentedConversion) Units(ctx context.Context) []usecase.UnitInfo {
	return i.next.Units(ctx)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case domainerr.IsOverflowError(err):
		return OutcomeOverflow
	case domainerr.IsClientError(err):
		return OutcomeClientError
	default:
		return OutcomeError
	}
}
