//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"vander-key-store/internal/domain/key"
	"vander-key-store/internal/pkg/errs"
	"vander-key-store/internal/usecase"
	usecasemock "vander-key-store/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCheckoutService_CreateCheckout(t *testing.T) {
	ctx := context.Background()
	catalog := key.NewCatalog("usd", 5000, 500)

	newService := func(t *testing.T) (*usecase.CheckoutService, *usecasemock.MockPaymentProvider) {
		ctrl := gomock.NewController(t)
		provider := usecasemock.NewMockPaymentProvider(ctrl)
		return usecase.NewCheckoutService(provider, catalog, "https://store.example.com/", discardLogger()), provider
	}

	t.Run("plans are priced from the catalog", func(t *testing.T) {
		testCases := []struct {
			plan           string
			expectedAmount int64
		}{
			{plan: "lifetime", expectedAmount: 5000},
			{plan: "monthly", expectedAmount: 500},
		}

		for _, tc := range testCases {
			t.Run(tc.plan, func(t *testing.T) {
				service, provider := newService(t)
				provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req usecase.CheckoutRequest) (*usecase.CheckoutSession, error) {
						assert.Equal(t, tc.expectedAmount, req.Offer.UnitAmount)
						assert.Equal(t, "usd", req.Offer.Currency)
						assert.Equal(t, "https://store.example.com/success?session_id={CHECKOUT_SESSION_ID}", req.SuccessURL)
						assert.Equal(t, "https://store.example.com/#store", req.CancelURL)
						assert.Equal(t, map[string]string{"plan": tc.plan}, req.Metadata)
						return &usecase.CheckoutSession{ID: "cs_" + tc.plan, URL: "https://pay.example/" + tc.plan}, nil
					}).Times(1)

				result, err := service.CreateCheckout(ctx, tc.plan)
				require.NoError(t, err)
				assert.Equal(t, &usecase.CheckoutResult{URL: "https://pay.example/" + tc.plan, SessionID: "cs_" + tc.plan}, result)
			})
		}
	})

	t.Run("unknown plans never reach the provider", func(t *testing.T) {
		for _, plan := range []string{"", "weekly", "LIFETIME"} {
			service, provider := newService(t)
			provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Times(0)

			_, err := service.CreateCheckout(ctx, plan)
			assert.True(t, errs.Is(err, usecase.ErrInvalidPlan), "plan %q", plan)
		}
	})

	t.Run("provider failure is reported as provider error", func(t *testing.T) {
		service, provider := newService(t)
		provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("card network down")).Times(1)

		_, err := service.CreateCheckout(ctx, "monthly")
		assert.True(t, errs.Is(err, usecase.ErrProviderError))
	})
}
