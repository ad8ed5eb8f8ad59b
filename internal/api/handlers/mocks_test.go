package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"freightline/backend/internal/models"
)

// --- Mocks ---

// MockQuoteService
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) SubmitQuote(ctx context.Context, quote *models.QuoteRequest) (string, error) {
	args := m.Called(ctx, quote)
	return args.String(0), args.Error(1)
}

// MockShipmentService
type MockShipmentService struct {
	mock.Mock
}

func (m *MockShipmentService) CreateShipment(ctx context.Context, payload *models.NewShipment) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

func (m *MockShipmentService) TrackShipment(ctx context.Context, trackingNumber string) (bson.M, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}
