package conversion

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/numduration"
	errs "github.com/amirhossein-jamali/numduration/internal/domain/error"
	coreport "github.com/amirhossein-jamali/numduration/internal/domain/port/core"
	"github.com/amirhossein-jamali/numduration/internal/domain/port/usecase"
)

// Years outside this range cannot be written as RFC 3339
const (
	minYear = 0
	maxYear = 9999
)

// Service implements the conversion business logic
type Service struct {
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new conversion use case instance
func NewService(timeProvider coreport.TimeProvider, logger coreport.Logger) usecase.ConversionUseCase {
	return &Service{
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Convert parses the value and unit and converts them to a duration
func (s *Service) Convert(ctx context.Context, req usecase.ConvertRequest) (*usecase.ConvertResult, error) {
	result, err := convert(req.Value, req.Unit)
	if err != nil {
		s.logFailure("Conversion rejected", err)
		return nil, err
	}

	s.logger.Debug("Duration converted", map[string]any{
		"value":       result.Value,
		"unit":        result.Unit,
		"nanoseconds": result.Nanoseconds,
	})

	return result, nil
}

// Shift converts the value and adds it to the requested instant, or to now
func (s *Service) Shift(ctx context.Context, req usecase.ShiftRequest) (*usecase.ShiftResult, error) {
	result, err := convert(req.Value, req.Unit)
	if err != nil {
		s.logFailure("Shift rejected", err)
		return nil, err
	}

	from := s.timeProvider.Now()
	if req.From != nil {
		from = *req.From
	}

	to := from.Add(result.Duration)
	if y := to.Year(); y < minYear || y > maxYear {
		err := errs.NewConversionError(req.Value, req.Unit,
			fmt.Errorf("%w: year %d out of range [%d,%d]", errs.ErrInvalidTime, y, minYear, maxYear))
		s.logFailure("Shift rejected", err)
		return nil, err
	}

	s.logger.Debug("Instant shifted", map[string]any{
		"value": result.Value,
		"unit":  result.Unit,
		"from":  from,
		"to":    to,
	})

	return &usecase.ShiftResult{
		ConvertResult: *result,
		From:          from,
		To:            to,
	}, nil
}

// Units lists the supported units in ascending order of scale
func (s *Service) Units(ctx context.Context) []usecase.UnitInfo {
	units := numduration.Units()
	infos := make([]usecase.UnitInfo, 0, len(units))
	for _, u := range units {
		infos = append(infos, usecase.UnitInfo{
			Name:        u.String(),
			Nanoseconds: int64(u.Scale()),
		})
	}
	return infos
}

// convert parses a base-10 value and a unit name and converts them
func convert(value, unit string) (*usecase.ConvertResult, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		// Anything outside int64 is outside the range of time.Duration for every unit
		if errors.Is(err, strconv.ErrRange) {
			return nil, errs.NewConversionError(value, unit, errs.ErrOverflow)
		}
		return nil, errs.NewConversionError(value, unit, errs.ErrInvalidValue)
	}

	u, err := numduration.ParseUnit(unit)
	if err != nil {
		return nil, errs.NewConversionError(value, unit, err)
	}

	d, err := numduration.Convert(v, u)
	if err != nil {
		return nil, errs.NewConversionError(value, unit, err)
	}

	return &usecase.ConvertResult{
		Value:       v,
		Unit:        u.String(),
		Duration:    d,
		Nanoseconds: d.Nanoseconds(),
	}, nil
}

func (s *Service) logFailure(message string, err error) {
	var convErr *errs.ConversionError
	if errors.As(err, &convErr) {
		s.logger.Warn(message, convErr.LogFields())
		return
	}
	s.logger.Warn(message, map[string]any{
		"error": err.Error(),
	})
}
