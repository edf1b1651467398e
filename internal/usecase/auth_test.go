//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"rental-admin-api/internal/usecase"
	usecasemock "rental-admin-api/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockVerifier *usecasemock.MockIdentityVerifier
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockVerifier = usecasemock.NewMockIdentityVerifier(s.mockCtrl)
}

func (s *AuthUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

func (s *AuthUseCaseTestSuite) TestLogin() {
	ctx := context.Background()
	admin := usecase.Identity{UID: "uid-1", Email: "Admin@Example.com"}

	s.Run("admits an allowlisted identity", func() {
		uc := usecase.NewAuthUseCase(s.mockVerifier, []string{"admin@example.com"})
		s.mockVerifier.EXPECT().Configured().Return(true).Times(1)
		s.mockVerifier.EXPECT().Verify(ctx, "token").Return(admin, nil).Times(1)

		id, err := uc.Login(ctx, "token")
		s.Require().NoError(err)
		s.Equal("uid-1", id.UID)
	})

	s.Run("rejects an identity off the allowlist", func() {
		uc := usecase.NewAuthUseCase(s.mockVerifier, []string{"other@example.com"})
		s.mockVerifier.EXPECT().Configured().Return(true).Times(1)
		s.mockVerifier.EXPECT().Verify(ctx, "token").Return(admin, nil).Times(1)

		_, err := uc.Login(ctx, "token")
		s.ErrorIs(err, usecase.ErrNotAdmin)
	})

	s.Run("an empty allowlist admits every verified identity", func() {
		uc := usecase.NewAuthUseCase(s.mockVerifier, nil)
		s.mockVerifier.EXPECT().Configured().Return(true).Times(1)
		s.mockVerifier.EXPECT().Verify(ctx, "token").Return(admin, nil).Times(1)

		_, err := uc.Login(ctx, "token")
		s.NoError(err)
	})

	s.Run("verification failure maps to an invalid token", func() {
		uc := usecase.NewAuthUseCase(s.mockVerifier, nil)
		s.mockVerifier.EXPECT().Configured().Return(true).Times(1)
		s.mockVerifier.EXPECT().Verify(ctx, "token").
			Return(usecase.Identity{}, errors.New("bad signature")).Times(1)

		_, err := uc.Login(ctx, "token")
		s.ErrorIs(err, usecase.ErrInvalidToken)
	})

	s.Run("unconfigured provider is reported as unavailable", func() {
		uc := usecase.NewAuthUseCase(s.mockVerifier, nil)
		s.mockVerifier.EXPECT().Configured().Return(false).Times(1)

		_, err := uc.Login(ctx, "token")
		s.ErrorIs(err, usecase.ErrIdentityUnavailable)
	})

	s.Run("a blank token never reaches the verifier", func() {
		uc := usecase.NewAuthUseCase(s.mockVerifier, nil)

		_, err := uc.Login(ctx, "   ")
		s.ErrorIs(err, usecase.ErrInvalidToken)
	})
}

func (s *AuthUseCaseTestSuite) TestVerifySession() {
	ctx := context.Background()

	s.Run("an empty token means no session", func() {
		uc := usecase.NewAuthUseCase(s.mockVerifier, nil)

		_, err := uc.VerifySession(ctx, "")
		s.ErrorIs(err, usecase.ErrNoSession)
	})

	s.Run("an unconfigured provider means no session", func() {
		uc := usecase.NewAuthUseCase(s.mockVerifier, nil)
		s.mockVerifier.EXPECT().Configured().Return(false).Times(1)

		_, err := uc.VerifySession(ctx, "token")
		s.ErrorIs(err, usecase.ErrNoSession)
	})

	s.Run("a valid token restores the identity", func() {
		uc := usecase.NewAuthUseCase(s.mockVerifier, nil)
		s.mockVerifier.EXPECT().Configured().Return(true).Times(1)
		s.mockVerifier.EXPECT().Verify(ctx, "token").
			Return(usecase.Identity{UID: "uid-1"}, nil).Times(1)

		id, err := uc.VerifySession(ctx, "token")
		s.Require().NoError(err)
		s.Equal("uid-1", id.UID)
	})
}
