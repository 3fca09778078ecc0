package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/piresc/yavijexpress/internal/pkg/apperrors"
	httpclient "github.com/piresc/yavijexpress/internal/pkg/http"
	"github.com/piresc/yavijexpress/internal/pkg/models"
)

// PaymentGW calls the external payment service over HTTP
type PaymentGW struct {
	client *httpclient.Client
}

// NewPaymentGW creates a new payment gateway
func NewPaymentGW(client *httpclient.Client) *PaymentGW {
	return &PaymentGW{client: client}
}

// Refund asks the payment service to refund a payment
func (g *PaymentGW) Refund(ctx context.Context, paymentID uuid.UUID, reason string) error {
	req := models.RefundRequest{
		PaymentID: paymentID.String(),
		Reason:    reason,
	}
	if err := g.client.PostJSON(ctx, "/payments/refund", req, nil); err != nil {
		return apperrors.Downstream("Payment service refund failed", err)
	}
	return nil
}
