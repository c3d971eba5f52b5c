//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"vander-key-store/internal/domain/key"
	"vander-key-store/internal/infra"
	"vander-key-store/internal/infra/sessionstore"
	"vander-key-store/internal/pkg/clock"
	"vander-key-store/internal/pkg/errs"
	"vander-key-store/internal/usecase"
	"vander-key-store/tests/common/builder"
	usecasemock "vander-key-store/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// sequenceGenerator hands out predictable keys.
type sequenceGenerator struct {
	n int
}

func (g *sequenceGenerator) Generate() string {
	g.n++
	return fmt.Sprintf("VANDER-TEST-0000-%04d", g.n)
}

var issuedAt = time.Date(2026, time.April, 10, 8, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type KeyReconcilerTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	mockRegistry *usecasemock.MockKeyRegistry
	mockStore    *usecasemock.MockSessionKeyStore
	mockProvider *usecasemock.MockPaymentProvider
	generator    *sequenceGenerator
	reconciler   *usecase.KeyReconciler
}

func (s *KeyReconcilerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRegistry = usecasemock.NewMockKeyRegistry(s.mockCtrl)
	s.mockStore = usecasemock.NewMockSessionKeyStore(s.mockCtrl)
	s.mockProvider = usecasemock.NewMockPaymentProvider(s.mockCtrl)
	s.generator = &sequenceGenerator{}

	s.reconciler = s.newReconciler(s.mockStore)
}

func (s *KeyReconcilerTestSuite) newReconciler(store usecase.SessionKeyStore) *usecase.KeyReconciler {
	defaults, err := key.NewDefaults("lifetime", "unknown")
	s.Require().NoError(err)
	return usecase.NewKeyReconciler(
		s.generator,
		s.mockRegistry,
		store,
		s.mockProvider,
		defaults,
		clock.NewMockClock(issuedAt),
		discardLogger(),
	)
}

func (s *KeyReconcilerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestKeyReconcilerSuite(t *testing.T) {
	suite.Run(t, new(KeyReconcilerTestSuite))
}

func notFound() error {
	return infra.NewErr(infra.KindNotFound, "session key not found", nil)
}

func (s *KeyReconcilerTestSuite) TestGetKey() {
	s.Run("error: blank session id is rejected before any lookup", func() {
		for _, id := range []string{"", "   "} {
			_, err := s.reconciler.GetKey(s.ctx, id)
			s.True(errs.Is(err, usecase.ErrMissingSessionID))
		}
	})

	s.Run("success: stored association is returned as is", func() {
		stored := builder.NewSessionKeyBuilder().Build()
		s.mockStore.EXPECT().Get(gomock.Any(), stored.SessionID).Return(stored, nil).Times(1)

		got, err := s.reconciler.GetKey(s.ctx, stored.SessionID)
		s.Require().NoError(err)
		s.Same(stored, got)
	})

	s.Run("success: paid session without association is issued on demand", func() {
		snapshot := builder.NewSessionSnapshotBuilder().With(func(ss *usecase.SessionSnapshot) {
			ss.ID = "cs_paid"
			ss.Plan = "monthly"
		}).Build()

		s.mockStore.EXPECT().Get(gomock.Any(), "cs_paid").Return(nil, notFound()).Times(1)
		s.mockProvider.EXPECT().GetCheckoutSession(gomock.Any(), "cs_paid").Return(&snapshot, nil).Times(1)
		s.mockRegistry.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record *key.Record) error {
				s.Equal(key.PlanMonthly, record.Plan())
				s.Require().NotNil(record.ExpiresAt())
				s.Equal(issuedAt.Add(key.MonthlyValidity), *record.ExpiresAt())
				return nil
			}).Times(1)
		s.mockStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		got, err := s.reconciler.GetKey(s.ctx, "cs_paid")
		s.Require().NoError(err)
		s.Equal("cs_paid", got.SessionID)
		s.Equal(key.PlanMonthly, got.Plan)
		s.Equal("buyer@example.com", got.Email)
		s.Equal(issuedAt, got.CreatedAt)
	})

	s.Run("error: unpaid session generates and caches nothing", func() {
		snapshot := builder.NewSessionSnapshotBuilder().With(func(ss *usecase.SessionSnapshot) {
			ss.ID = "cs_unpaid"
			ss.Paid = false
		}).Build()

		s.mockStore.EXPECT().Get(gomock.Any(), "cs_unpaid").Return(nil, notFound()).Times(1)
		s.mockProvider.EXPECT().GetCheckoutSession(gomock.Any(), "cs_unpaid").Return(&snapshot, nil).Times(1)
		s.mockRegistry.EXPECT().Append(gomock.Any(), gomock.Any()).Times(0)
		s.mockStore.EXPECT().Put(gomock.Any(), gomock.Any()).Times(0)

		before := s.generator.n
		_, err := s.reconciler.GetKey(s.ctx, "cs_unpaid")
		s.True(errs.Is(err, usecase.ErrPaymentNotCompleted))
		s.Equal(before, s.generator.n)
	})

	s.Run("error: provider lookup failure is a verification failure", func() {
		s.mockStore.EXPECT().Get(gomock.Any(), "cs_err").Return(nil, notFound()).Times(1)
		s.mockProvider.EXPECT().GetCheckoutSession(gomock.Any(), "cs_err").
			Return(nil, errors.New("stripe unreachable")).Times(1)

		_, err := s.reconciler.GetKey(s.ctx, "cs_err")
		s.True(errs.Is(err, usecase.ErrVerificationFailed))
	})

	s.Run("success: unreadable store falls back to the provider", func() {
		snapshot := builder.NewSessionSnapshotBuilder().With(func(ss *usecase.SessionSnapshot) {
			ss.ID = "cs_store_down"
		}).Build()

		s.mockStore.EXPECT().Get(gomock.Any(), "cs_store_down").
			Return(nil, infra.NewErr(infra.KindStoreFailure, "redis get", errors.New("i/o timeout"))).Times(1)
		s.mockProvider.EXPECT().GetCheckoutSession(gomock.Any(), "cs_store_down").Return(&snapshot, nil).Times(1)
		s.mockRegistry.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		s.mockStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		got, err := s.reconciler.GetKey(s.ctx, "cs_store_down")
		s.Require().NoError(err)
		s.Equal("cs_store_down", got.SessionID)
	})
}

func (s *KeyReconcilerTestSuite) TestIssue() {
	s.Run("success: registered record and stored association share the key", func() {
		var registered *key.Record
		var stored *key.SessionKey
		s.mockRegistry.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record *key.Record) error {
				registered = record
				return nil
			}).Times(1)
		s.mockStore.EXPECT().Put(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sk *key.SessionKey) error {
				stored = sk
				return nil
			}).Times(1)

		got, err := s.reconciler.Issue(s.ctx, builder.NewSessionSnapshotBuilder().Build())
		s.Require().NoError(err)

		s.Require().NotNil(registered)
		s.Equal(registered.ID(), got.Key)
		s.Equal(key.PlanLifetime, registered.Plan())
		s.Nil(registered.ExpiresAt())
		s.False(registered.Used())
		s.Nil(registered.HWID())
		s.Same(got, stored)
	})

	s.Run("success: defaults fill missing plan and email", func() {
		testCases := []struct {
			name          string
			snapshot      usecase.SessionSnapshot
			expectedPlan  key.Plan
			expectedEmail string
		}{
			{
				name:          "no plan and no email",
				snapshot:      usecase.SessionSnapshot{ID: "cs_1", Paid: true},
				expectedPlan:  key.PlanLifetime,
				expectedEmail: "unknown",
			},
			{
				name:          "unknown plan falls back",
				snapshot:      usecase.SessionSnapshot{ID: "cs_2", Paid: true, Plan: "weekly"},
				expectedPlan:  key.PlanLifetime,
				expectedEmail: "unknown",
			},
			{
				name:          "customer details email is second choice",
				snapshot:      usecase.SessionSnapshot{ID: "cs_3", Paid: true, Plan: "monthly", CustomerDetailsEmail: "details@example.com"},
				expectedPlan:  key.PlanMonthly,
				expectedEmail: "details@example.com",
			},
			{
				name:          "customer email wins",
				snapshot:      usecase.SessionSnapshot{ID: "cs_4", Paid: true, CustomerEmail: "first@example.com", CustomerDetailsEmail: "details@example.com"},
				expectedPlan:  key.PlanLifetime,
				expectedEmail: "first@example.com",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRegistry.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				s.mockStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil).Times(1)

				got, err := s.reconciler.Issue(s.ctx, tc.snapshot)
				s.Require().NoError(err)
				s.Equal(tc.expectedPlan, got.Plan)
				s.Equal(tc.expectedEmail, got.Email)
			})
		}
	})

	s.Run("success: registry failure does not block delivery", func() {
		s.mockRegistry.EXPECT().Append(gomock.Any(), gomock.Any()).
			Return(infra.NewErr(infra.KindRemoteFailure, "registry write", errors.New("503"))).Times(1)
		s.mockStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		got, err := s.reconciler.Issue(s.ctx, builder.NewSessionSnapshotBuilder().Build())
		s.Require().NoError(err)
		s.NotEmpty(got.Key)
	})

	s.Run("success: store failure does not block delivery", func() {
		s.mockRegistry.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		s.mockStore.EXPECT().Put(gomock.Any(), gomock.Any()).
			Return(infra.NewErr(infra.KindStoreFailure, "redis set", errors.New("oom"))).Times(1)

		got, err := s.reconciler.Issue(s.ctx, builder.NewSessionSnapshotBuilder().Build())
		s.Require().NoError(err)
		s.NotEmpty(got.Key)
	})

	s.Run("error: session without id is rejected", func() {
		_, err := s.reconciler.Issue(s.ctx, usecase.SessionSnapshot{Paid: true})
		s.True(errs.Is(err, usecase.ErrMissingSessionID))
	})
}

func (s *KeyReconcilerTestSuite) TestLookupIssuanceIsIdempotent() {
	reconciler := s.newReconciler(sessionstore.NewMemoryStore())
	snapshot := builder.NewSessionSnapshotBuilder().Build()

	s.mockProvider.EXPECT().GetCheckoutSession(gomock.Any(), snapshot.ID).Return(&snapshot, nil).Times(1)
	s.mockRegistry.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	first, err := reconciler.GetKey(s.ctx, snapshot.ID)
	s.Require().NoError(err)

	for range 3 {
		again, err := reconciler.GetKey(s.ctx, snapshot.ID)
		s.Require().NoError(err)
		s.Equal(first.Key, again.Key)
	}
}

func (s *KeyReconcilerTestSuite) TestWebhookThenLookupReturnsSameKey() {
	reconciler := s.newReconciler(sessionstore.NewMemoryStore())
	snapshot := builder.NewSessionSnapshotBuilder().Build()

	s.mockRegistry.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.mockProvider.EXPECT().GetCheckoutSession(gomock.Any(), gomock.Any()).Times(0)

	issued, err := reconciler.Issue(s.ctx, snapshot)
	s.Require().NoError(err)

	got, err := reconciler.GetKey(s.ctx, snapshot.ID)
	s.Require().NoError(err)
	s.Equal(issued.Key, got.Key)
}
