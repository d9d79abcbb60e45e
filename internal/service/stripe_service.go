package service

import (
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/refund"
)

// StripeService is the payment collaborator. The engine only ever asks it to
// refund a captured payment; charging happens outside this service.
type StripeService struct{}

func NewStripeService(apiKey string) *StripeService {
	stripe.Key = apiKey
	return &StripeService{}
}

// RefundPayment refunds the full payment intent.
func (s *StripeService) RefundPayment(paymentIntentID string) error {
	if paymentIntentID == "" {
		return fmt.Errorf("payment intent id is required")
	}
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
	}
	if _, err := refund.New(params); err != nil {
		return fmt.Errorf("error creating refund for payment intent %s: %w", paymentIntentID, err)
	}
	return nil
}
