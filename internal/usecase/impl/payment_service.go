package impl

import (
	"context"
	"log/slog"

	"belleza/config"
	deliverycontext "belleza/internal/delivery/context"
	"belleza/internal/domain/entity"
	domainerrors "belleza/internal/domain/errors"
	"belleza/internal/domain/repository"
	"belleza/internal/domain/service"
	"belleza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCurrency = "usd"

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	paymentRepo repository.PaymentRepository
	gateway     service.PaymentGateway
	currency    string
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PaymentRepo repository.PaymentRepository
	Gateway     service.PaymentGateway
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	currency := defaultCurrency
	if params.Config != nil && params.Config.Stripe != nil && params.Config.Stripe.Currency != "" {
		currency = params.Config.Stripe.Currency
	}

	return &paymentService{
		txManager:   params.TxManager,
		paymentRepo: params.PaymentRepo,
		gateway:     params.Gateway,
		currency:    currency,
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateIntent is the authorize phase. The price arrives in major currency
// units and is converted to minor units by multiplying by 100 and
// truncating. Pure pass-through to the processor; nothing is persisted and
// failures are not retried.
func (srv *paymentService) CreateIntent(ctx context.Context, input *usecase.CreateIntentInput) (*usecase.CreateIntentOutput, error) {
	amount := int64(input.Price * 100)

	srv.log(ctx).Info("Creating payment intent",
		slog.Int64("amount", amount), slog.String("currency", srv.currency))

	intent, err := srv.gateway.CreateIntent(ctx, amount, srv.currency)
	if err != nil {
		srv.log(ctx).Error("Payment intent creation failed", slog.Any("error", err))

		return nil, domainerrors.NewPaymentGatewayError(err)
	}

	return &usecase.CreateIntentOutput{ClientSecret: intent.ClientSecret}, nil
}

// RecordPayment is the settle phase: insert one payment record with status
// pending, then delete the referenced cart entries, in that order, inside a
// single transaction. Both steps run even when CartIDs is empty: a payment
// may reference entries already cleared by a prior partial failure, and it
// must still be recorded.
func (srv *paymentService) RecordPayment(ctx context.Context, input *usecase.RecordPaymentInput) (*usecase.RecordPaymentOutput, error) {
	payment := &entity.Payment{
		Email:         input.Email,
		Price:         input.Price,
		Currency:      srv.currency,
		TransactionID: input.TransactionID,
		CartIDs:       input.CartIDs,
		Status:        entity.PaymentStatusPending,
	}

	var removed int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.NewPaymentRepository()
		cartRepo := repoFactory.NewCartRepository()

		// Record first, clear second. The order is part of the protocol:
		// a payment must never be lost because the cart cleanup failed.
		if err := paymentRepo.Create(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to record payment")
		}

		deleted, err := cartRepo.DeleteByIDs(ctx, input.CartIDs)
		if err != nil {
			return errors.Wrap(err, "failed to clear settled cart entries")
		}
		removed = deleted

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Payment settle transaction failed",
			slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute payment settle transaction")
	}

	srv.log(ctx).Info("Payment recorded",
		slog.Any("paymentID", payment.ID),
		slog.String("email", payment.Email),
		slog.Int64("removedCartEntries", removed))

	return &usecase.RecordPaymentOutput{Payment: payment, RemovedCartCount: removed}, nil
}

// ConfirmPayment promotes a payment from pending to confirmed. Re-confirming
// an already confirmed record is a harmless no-op write.
func (srv *paymentService) ConfirmPayment(ctx context.Context, id uuid.UUID) error {
	if err := srv.paymentRepo.UpdateStatus(ctx, id, entity.PaymentStatusConfirmed); err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return domainerrors.ErrPaymentNotFound.WrapMessage("cannot confirm unknown payment")
		}

		return errors.Wrap(err, "failed to confirm payment")
	}

	srv.log(ctx).Info("Payment confirmed", slog.Any("paymentID", id))

	return nil
}

// ListPayments returns the payment history of one identity. Ownership is
// enforced at the route: the path email must equal the verified token email.
func (srv *paymentService) ListPayments(ctx context.Context, email string) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}
