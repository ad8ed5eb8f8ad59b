package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"freightline/backend/internal/models"
)

// IQuoteService defines the interface for quote request operations.
type IQuoteService interface {
	SubmitQuote(ctx context.Context, quote *models.QuoteRequest) (string, error)
}

const quotesCollection = "quoterequest"

// quoteService implements IQuoteService.
type quoteService struct {
	db *mongo.Database
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(db *mongo.Database) IQuoteService {
	return &quoteService{db: db}
}

// SubmitQuote persists a validated quote request and returns the assigned
// identifier as a string. Validation happens at the handler boundary; this
// method assumes the payload already passed its rules.
func (s *quoteService) SubmitQuote(ctx context.Context, quote *models.QuoteRequest) (string, error) {
	res, err := s.db.Collection(quotesCollection).InsertOne(ctx, quote)
	if err != nil {
		return "", fmt.Errorf("failed to insert quote request: %w", err)
	}
	return insertedIDString(res.InsertedID), nil
}

// insertedIDString renders a driver-assigned identifier as a string.
func insertedIDString(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", id)
}
