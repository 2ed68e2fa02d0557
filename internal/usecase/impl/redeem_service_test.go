package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type redeemServiceFixtures struct {
	service     usecase.RedeemUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
	codeRepo    *mockRepo.MockRedeemCodeRepository
	qrCode      *mockSvc.MockQRCodeService
	uploader    *mockSvc.MockImageUploader
	mailer      *mockSvc.MockMailDispatcher
}

func createTestRedeemService(t *testing.T) redeemServiceFixtures {
	fx := redeemServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		codeRepo:    mockRepo.NewMockRedeemCodeRepository(t),
		qrCode:      mockSvc.NewMockQRCodeService(t),
		uploader:    mockSvc.NewMockImageUploader(t),
		mailer:      mockSvc.NewMockMailDispatcher(t),
	}

	fx.service = NewRedeemService(RedeemServiceParams{
		TxManager: fx.txManager,
		CodeRepo:  fx.codeRepo,
		QRCode:    fx.qrCode,
		Uploader:  fx.uploader,
		Mailer:    fx.mailer,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return fx
}

// runInTransaction makes the transaction manager invoke its callback with the fixture factory.
func (fx redeemServiceFixtures) runInTransaction() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestRedeemService_GenerateCodes(t *testing.T) {
	fx := createTestRedeemService(t)
	productID := uuid.New()
	fx.runInTransaction()
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().RedeemCodeRepo().Return(fx.codeRepo)
	fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)
	fx.codeRepo.EXPECT().
		CreateBatch(mock.Anything, mock.MatchedBy(func(codes []*entity.RedeemCode) bool { return len(codes) == 3 })).
		Return(nil)

	codes, err := fx.service.GenerateCodes(context.Background(), &usecase.GenerateRedeemCodesInput{ProductID: productID, Quantity: 3})

	require.NoError(t, err)
	require.Len(t, codes, 3)
	assert.NotEqual(t, codes[0].Code, codes[1].Code)
	_, parseErr := uuid.Parse(codes[2].Code)
	assert.NoError(t, parseErr)
}

func TestRedeemService_GenerateCodes_QuantityBounds(t *testing.T) {
	fx := createTestRedeemService(t)

	_, err := fx.service.GenerateCodes(context.Background(), &usecase.GenerateRedeemCodesInput{ProductID: uuid.New(), Quantity: 0})
	requireValidationField(t, err, "quantity")

	_, err = fx.service.GenerateCodes(context.Background(), &usecase.GenerateRedeemCodesInput{ProductID: uuid.New(), Quantity: 501})
	requireValidationField(t, err, "quantity")
}

func TestRedeemService_AssignCode(t *testing.T) {
	fx := createTestRedeemService(t)
	userID := uuid.New()
	productID := uuid.New()
	assigned := &entity.RedeemCode{ID: uuid.New(), Code: "code-1", ProductID: productID, IsUsed: true, UserID: &userID}

	fx.runInTransaction()
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().RedeemCodeRepo().Return(fx.codeRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID, Username: "jane", Email: "jane@example.com"}, nil)
	fx.codeRepo.EXPECT().Assign(mock.Anything, "code-1", userID).Return(assigned, nil)
	fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(&entity.Product{ID: productID, Title: "Steam Wallet"}, nil)
	fx.qrCode.EXPECT().GenerateRedeemCodeQR("code-1").Return([]byte("png"), nil)
	fx.uploader.EXPECT().
		UploadImage(mock.Anything, "storefront-test/redeem-codes", assigned.ID.String(), []byte("png")).
		Return("https://img.example.com/qr.png", nil)
	fx.mailer.EXPECT().
		Dispatch(service.MailMessage{
			To:          "jane@example.com",
			Template:    service.MailTemplateRedeem,
			Username:    "jane",
			RedeemCode:  "code-1",
			QRImageURL:  "https://img.example.com/qr.png",
			ProductName: "Steam Wallet",
		}).
		Return()

	code, err := fx.service.AssignCode(context.Background(), " code-1 ", userID)

	require.NoError(t, err)
	assert.Same(t, assigned, code)
}

func TestRedeemService_AssignCode_AlreadyUsed(t *testing.T) {
	fx := createTestRedeemService(t)
	userID := uuid.New()

	fx.runInTransaction()
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().RedeemCodeRepo().Return(fx.codeRepo)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
	fx.codeRepo.EXPECT().Assign(mock.Anything, "code-1", userID).Return(nil, repository.ErrRedeemCodeUsed)

	_, err := fx.service.AssignCode(context.Background(), "code-1", userID)

	requireValidationField(t, err, "code")
}

func TestRedeemService_AssignCode_QRFailureStillMails(t *testing.T) {
	fx := createTestRedeemService(t)
	userID := uuid.New()
	productID := uuid.New()
	assigned := &entity.RedeemCode{ID: uuid.New(), Code: "code-2", ProductID: productID}

	fx.runInTransaction()
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().RedeemCodeRepo().Return(fx.codeRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID, Email: "jane@example.com"}, nil)
	fx.codeRepo.EXPECT().Assign(mock.Anything, "code-2", userID).Return(assigned, nil)
	fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)
	fx.qrCode.EXPECT().GenerateRedeemCodeQR("code-2").Return(nil, errors.New("too long"))
	fx.mailer.EXPECT().
		Dispatch(mock.MatchedBy(func(msg service.MailMessage) bool { return msg.QRImageURL == "" && msg.RedeemCode == "code-2" })).
		Return()

	_, err := fx.service.AssignCode(context.Background(), "code-2", userID)

	require.NoError(t, err)
}
