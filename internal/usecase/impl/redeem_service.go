package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxRedeemCodeBatch = 500

// redeemService implements the RedeemUsecase interface.
type redeemService struct {
	txManager repository.TransactionManager
	codeRepo  repository.RedeemCodeRepository
	qrCode    service.QRCodeService
	uploader  service.ImageUploader
	mailer    service.MailDispatcher
	folder    string
	logger    *slog.Logger
}

// RedeemServiceParams holds dependencies for RedeemService, injected by Fx.
type RedeemServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CodeRepo  repository.RedeemCodeRepository
	QRCode    service.QRCodeService
	Uploader  service.ImageUploader
	Mailer    service.MailDispatcher `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRedeemService is the constructor for redeemService.
func NewRedeemService(params RedeemServiceParams) usecase.RedeemUsecase {
	folder := defaultUploadFolder
	if params.Config != nil && params.Config.Cloudinary != nil && params.Config.Cloudinary.Folder != "" {
		folder = params.Config.Cloudinary.Folder
	}

	return &redeemService{
		txManager: params.TxManager,
		codeRepo:  params.CodeRepo,
		qrCode:    params.QRCode,
		uploader:  params.Uploader,
		mailer:    params.Mailer,
		folder:    folder + "/redeem-codes",
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *redeemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateCodes creates quantity unused codes for a product.
func (srv *redeemService) GenerateCodes(ctx context.Context, input *usecase.GenerateRedeemCodesInput) ([]*entity.RedeemCode, error) {
	if input.Quantity < 1 || input.Quantity > maxRedeemCodeBatch {
		return nil, domainerrors.NewValidationError("quantity", "quantity must be between 1 and 500")
	}

	var codes []*entity.RedeemCode
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ProductRepo().FindByID(ctx, input.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		codes = make([]*entity.RedeemCode, 0, input.Quantity)
		for range input.Quantity {
			codes = append(codes, &entity.RedeemCode{
				Code:      uuid.NewString(),
				ProductID: input.ProductID,
			})
		}

		return repoFactory.RedeemCodeRepo().CreateBatch(ctx, codes)
	})
	if err != nil {
		return nil, translateStorageError(err, "failed to generate redeem codes")
	}

	srv.log(ctx).Info("Redeem codes generated",
		slog.String("product_id", input.ProductID.String()),
		slog.Int("quantity", input.Quantity),
	)

	return codes, nil
}

// ListCodes returns a page of codes, optionally of one product and only unused ones.
func (srv *redeemService) ListCodes(ctx context.Context, productID *uuid.UUID, onlyUnused bool, page repository.Page) ([]*entity.RedeemCode, error) {
	codes, err := srv.codeRepo.List(ctx, productID, onlyUnused, page.Normalize())
	if err != nil {
		return nil, translateStorageError(err, "failed to list redeem codes")
	}

	return codes, nil
}

// AssignCode hands an unused code to a user and emails it with a QR image.
func (srv *redeemService) AssignCode(ctx context.Context, code string, userID uuid.UUID) (*entity.RedeemCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domainerrors.NewValidationError("code", "code is required")
	}

	var (
		assigned *entity.RedeemCode
		user     *entity.User
		product  *entity.Product
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error

		user, err = repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		assigned, err = repoFactory.RedeemCodeRepo().Assign(ctx, code, userID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrRedeemCodeNotFound):
				return domainerrors.ErrRedeemCodeNotFound
			case errors.Is(err, repository.ErrRedeemCodeUsed):
				return domainerrors.NewValidationError("code", "this code has already been used")
			default:
				return errors.Wrap(err, "failed to assign redeem code")
			}
		}

		product, err = repoFactory.ProductRepo().FindByID(ctx, assigned.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		return nil
	})
	if err != nil {
		return nil, translateStorageError(err, "failed to assign redeem code")
	}

	srv.log(ctx).Info("Redeem code assigned",
		slog.String("code_id", assigned.ID.String()),
		slog.String("user_id", userID.String()),
	)

	srv.notifyAssignment(ctx, assigned, user, product)

	return assigned, nil
}

// notifyAssignment emails the code. A QR image is attached when it can be rendered and hosted.
func (srv *redeemService) notifyAssignment(ctx context.Context, code *entity.RedeemCode, user *entity.User, product *entity.Product) {
	if srv.mailer == nil || user.Email == "" {
		return
	}

	qrURL := ""
	png, err := srv.qrCode.GenerateRedeemCodeQR(code.Code)
	if err != nil {
		srv.log(ctx).Warn("Failed to render redeem QR code", slog.Any("error", err))
	} else {
		qrURL, err = srv.uploader.UploadImage(ctx, srv.folder, code.ID.String(), png)
		if err != nil {
			srv.log(ctx).Warn("Failed to upload redeem QR code", slog.Any("error", err))
		}
	}

	srv.mailer.Dispatch(service.MailMessage{
		To:          user.Email,
		Template:    service.MailTemplateRedeem,
		Username:    user.Username,
		RedeemCode:  code.Code,
		QRImageURL:  qrURL,
		ProductName: product.Title,
	})
}
