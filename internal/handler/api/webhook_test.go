//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"vander-key-store/internal/handler/api"
	resdto "vander-key-store/internal/handler/dto/response"
	"vander-key-store/internal/handler/middleware"
	"vander-key-store/internal/pkg/errs"
	"vander-key-store/internal/usecase"
	"vander-key-store/tests/common/httptest"
	usecasemock "vander-key-store/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockWebhookUseCase
	handler     *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockWebhookUseCase(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockUseCase)

	s.router.POST("/webhook", middleware.BodyLimit(api.WebhookBodyLimit), s.handler.Receive)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestReceive() {
	url := "/webhook"
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	signature := "t=1,v1=abc"
	headers := map[string]string{api.HeaderStripeSignature: signature}

	s.Run("success: raw body and signature reach the use case", func() {
		s.mockUseCase.EXPECT().HandleWebhook(gomock.Any(), payload, signature).
			Return(&usecase.WebhookResult{EventID: "evt_1", Type: usecase.EventCheckoutSessionCompleted, Handled: true}, nil).
			Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)

		var ack resdto.WebhookAck
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &ack)
		s.True(ack.Received)
	})

	s.Run("success: unhandled issuance is still acknowledged", func() {
		s.mockUseCase.EXPECT().HandleWebhook(gomock.Any(), payload, signature).
			Return(&usecase.WebhookResult{EventID: "evt_1", Handled: false}, nil).
			Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)
		s.JSONEq(`{"received":true}`, rec.Body.String())
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			useCaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid signature",
				useCaseError:   errs.Mark(errors.New("no valid signature"), usecase.ErrSignatureInvalid),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "invalid signature",
			},
			{
				name:           "malformed event",
				useCaseError:   errs.Mark(errors.New("bad json"), usecase.ErrMalformedEvent),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "malformed event",
			},
			{
				name:           "unexpected error",
				useCaseError:   errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().HandleWebhook(gomock.Any(), payload, signature).
					Return(nil, tc.useCaseError).Times(1)

				rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: oversized body never reaches the use case", func() {
		huge := bytes.Repeat([]byte("a"), api.WebhookBodyLimit+1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, huge, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusRequestEntityTooLarge, "too large")
	})
}
