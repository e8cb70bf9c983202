package platformerrors

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"gorm.io/gorm"
)

func TestAsErrorPreservesOriginalType(t *testing.T) {
	ctx := context.Background()
	inner := NewError(ctx, LayerRepository, ErrorTypeNotFound, "persona not found", nil, "")

	wrapped := AsError(ctx, LayerDomain, inner, "lookup failed")
	if wrapped.Type != ErrorTypeNotFound {
		t.Fatalf("Type = %s, want not_found", wrapped.Type)
	}
	if wrapped.Layer != LayerDomain {
		t.Fatalf("Layer = %s, want domain", wrapped.Layer)
	}
	if !errors.Is(wrapped, inner) {
		t.Fatal("wrapped error should unwrap to the original")
	}
}

func TestAsErrorClassifiesGormErrors(t *testing.T) {
	ctx := context.Background()

	notFound := AsError(ctx, LayerRepository, gorm.ErrRecordNotFound, "load failed")
	if notFound.Type != ErrorTypeNotFound {
		t.Errorf("record not found classified as %s", notFound.Type)
	}

	dup := AsError(ctx, LayerRepository, gorm.ErrDuplicatedKey, "insert failed")
	if dup.Type != ErrorTypeConflict {
		t.Errorf("duplicated key classified as %s", dup.Type)
	}

	other := AsError(ctx, LayerRepository, errors.New("boom"), "query failed")
	if other.Type != ErrorTypeInternal {
		t.Errorf("unknown error classified as %s", other.Type)
	}
}

func TestIsErrorType(t *testing.T) {
	ctx := context.Background()
	err := NewError(ctx, LayerDomain, ErrorTypeValidation, "title is required", nil, "")

	if !IsErrorType(err, ErrorTypeValidation) {
		t.Error("direct match failed")
	}
	if !IsValidationError(err) {
		t.Error("IsValidationError failed")
	}

	wrapped := AsError(ctx, LayerHandler, err, "create failed")
	if !IsErrorType(wrapped, ErrorTypeValidation) {
		t.Error("match through wrapping failed")
	}

	if IsErrorType(errors.New("plain"), ErrorTypeValidation) {
		t.Error("plain error should not match")
	}
}

func TestNewErrorAssignsCode(t *testing.T) {
	ctx := context.Background()

	withCode := NewError(ctx, LayerHandler, ErrorTypeValidation, "bad input", nil, "pers-create-001")
	if withCode.Code != "pers-create-001" {
		t.Errorf("Code = %q", withCode.Code)
	}

	generated := NewError(ctx, LayerHandler, ErrorTypeValidation, "bad input", nil, "")
	if generated.Code == "" {
		t.Error("empty code should be replaced with a generated one")
	}
}

func TestErrorCarriesRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDContextKey{}, "req-123")
	err := NewError(ctx, LayerDomain, ErrorTypeInternal, "boom", nil, "")
	if err.RequestID != "req-123" {
		t.Errorf("RequestID = %q", err.RequestID)
	}
}

func TestErrorTypeToHTTPStatus(t *testing.T) {
	cases := map[ErrorType]int{
		ErrorTypeValidation:     http.StatusBadRequest,
		ErrorTypeNotFound:       http.StatusNotFound,
		ErrorTypeConflict:       http.StatusConflict,
		ErrorTypeInvalidState:   http.StatusConflict,
		ErrorTypeUnauthorized:   http.StatusUnauthorized,
		ErrorTypeForbidden:      http.StatusForbidden,
		ErrorTypeConfiguration:  http.StatusServiceUnavailable,
		ErrorTypeExternal:       http.StatusServiceUnavailable,
		ErrorTypeTimeout:        http.StatusGatewayTimeout,
		ErrorTypeNotImplemented: http.StatusNotImplemented,
		ErrorTypeInternal:       http.StatusInternalServerError,
	}
	for errType, want := range cases {
		if got := ErrorTypeToHTTPStatus(errType); got != want {
			t.Errorf("%s -> %d, want %d", errType, got, want)
		}
	}
}
