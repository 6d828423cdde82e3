package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/core/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockAccountRepository
	mockContainer *MockContainerRepository
	mockPublisher *MockEventPublisher
	service       portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockContainer = new(MockContainerRepository)
	suite.mockPublisher = new(MockEventPublisher)
	suite.service = services.NewAccountService(suite.mockRepo,
		services.WithLocks(services.NewContainerLocks()),
		services.WithNotifier(services.NewChangeNotifier(suite.mockPublisher)),
		services.WithContainerReader(suite.mockContainer),
		services.WithClock(fixedClock),
	)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "  Cash ", Classification: domain.Asset, OpeningBalance: 100000}

	suite.mockContainer.On("FindContainerByID", ctx, int64(1)).Return(&domain.Container{ContainerID: 1}, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == "Cash" && a.ContainerID == 1 && a.Classification == domain.Asset &&
			a.OpeningBalance == 100000 && a.CreatedAt.Equal(fixedNow)
	})).Return(&domain.Account{AccountID: 7, ContainerID: 1, Name: "Cash", Classification: domain.Asset, OpeningBalance: 100000}, nil).Once()
	suite.mockPublisher.On("Publish", ctx, mock.MatchedBy(func(e domain.LedgerEvent) bool {
		return e.Type == domain.EventAccountCreated && e.AccountID == 7 && e.ContainerID == 1 && e.ID != ""
	})).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, 1, req)

	suite.Require().NoError(err)
	suite.Equal(int64(7), created.AccountID)
	suite.Equal("Cash", created.Name)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_AcceptsNegativeOpeningBalance() {
	ctx := context.Background()
	suite.mockContainer.On("FindContainerByID", ctx, int64(1)).Return(&domain.Container{ContainerID: 1}, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool { return a.OpeningBalance == -2500 })).
		Return(&domain.Account{AccountID: 3, ContainerID: 1, OpeningBalance: -2500}, nil).Once()
	suite.mockPublisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, 1, dto.CreateAccountRequest{Name: "Card", Classification: domain.Liability, OpeningBalance: -2500})

	suite.Require().NoError(err)
	suite.Equal(int64(-2500), created.OpeningBalance)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidClassification() {
	created, err := suite.service.CreateAccount(context.Background(), 1, dto.CreateAccountRequest{Name: "Odd", Classification: "revenue"})

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "revenue")
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_EmptyName() {
	_, err := suite.service.CreateAccount(context.Background(), 1, dto.CreateAccountRequest{Name: "   ", Classification: domain.Asset})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateName() {
	ctx := context.Background()
	suite.mockContainer.On("FindContainerByID", ctx, int64(1)).Return(&domain.Container{ContainerID: 1}, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.Anything).Return(nil, apperrors.DuplicateNameError("account", "Cash")).Once()

	created, err := suite.service.CreateAccount(ctx, 1, dto.CreateAccountRequest{Name: "Cash", Classification: domain.Asset})

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPublisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownContainer() {
	ctx := context.Background()
	suite.mockContainer.On("FindContainerByID", ctx, int64(42)).Return(nil, apperrors.NotFoundError("container 42 not found")).Once()

	_, err := suite.service.CreateAccount(ctx, 42, dto.CreateAccountRequest{Name: "Cash", Classification: domain.Asset})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetAccount_OtherContainerIsNotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, int64(5)).Return(&domain.Account{AccountID: 5, ContainerID: 2}, nil).Once()

	account, err := suite.service.GetAccount(ctx, 1, 5)

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_KeepsClassification() {
	ctx := context.Background()
	newName := "Wallet"
	newOpening := int64(500)
	suite.mockRepo.On("FindAccountByID", ctx, int64(5)).
		Return(&domain.Account{AccountID: 5, ContainerID: 1, Name: "Cash", Classification: domain.Asset, OpeningBalance: 100}, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, int64(5), domain.AccountUpdate{Name: "Wallet", OpeningBalance: 500, UpdatedAt: fixedNow}).Return(nil).Once()
	suite.mockPublisher.On("Publish", ctx, mock.MatchedBy(func(e domain.LedgerEvent) bool { return e.Type == domain.EventAccountUpdated })).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, 1, 5, dto.UpdateAccountRequest{Name: &newName, OpeningBalance: &newOpening})

	suite.Require().NoError(err)
	suite.Equal("Wallet", updated.Name)
	suite.Equal(int64(500), updated.OpeningBalance)
	suite.Equal(domain.Asset, updated.Classification)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_PublishFailureDoesNotFailWrite() {
	ctx := context.Background()
	suite.mockContainer.On("FindContainerByID", ctx, int64(1)).Return(&domain.Container{ContainerID: 1}, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.Anything).Return(&domain.Account{AccountID: 9, ContainerID: 1}, nil).Once()
	suite.mockPublisher.On("Publish", ctx, mock.Anything).Return(assert.AnError).Once()

	created, err := suite.service.CreateAccount(ctx, 1, dto.CreateAccountRequest{Name: "Cash", Classification: domain.Asset})

	suite.Require().NoError(err)
	suite.Equal(int64(9), created.AccountID)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
