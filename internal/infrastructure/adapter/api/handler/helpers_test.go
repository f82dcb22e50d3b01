package handler_test

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/numduration/internal/domain/port/usecase"
)

// brokenConversion fails every call with an error the API must not expose
type brokenConversion struct{}

func (brokenConversion) Convert(context.Context, usecase.ConvertRequest) (*usecase.ConvertResult, error) {
	return nil, errors.New("secret backend detail")
}

func (brokenConversion) Shift(context.Context, usecase.ShiftRequest) (*usecase.ShiftResult, error) {
	return nil, errors.New("secret backend detail")
}

func (brokenConversion) Units(context.Context) []usecase.UnitInfo {
	return nil
}
