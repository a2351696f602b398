package bambora

import (
	"context"
	"fmt"
	"time"

	"bamborapay/internal/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service struct {
	orders      orderReader
	orderWriter orderPaymentWriter
	notes       noteAppender
	addresses   addressReader
	directory   directoryReader
	settings    settingsReader
	log         *zap.Logger

	gatewayURL string
}

func NewService(
	orders orderReader,
	orderWriter orderPaymentWriter,
	notes noteAppender,
	addresses addressReader,
	directory directoryReader,
	settings settingsReader,
	log *zap.Logger,
	gatewayURL string,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		orders:      orders,
		orderWriter: orderWriter,
		notes:       notes,
		addresses:   addresses,
		directory:   directory,
		settings:    settings,
		log:         log,
		gatewayURL:  gatewayURL,
	}
}

// BuildCheckoutRedirect loads the order and its billing address and produces
// the signed gateway URL the customer is sent to.
func (s *Service) BuildCheckoutRedirect(ctx context.Context, orderID int64) (SignedRedirect, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return SignedRedirect{}, fmt.Errorf("load settings: %w", err)
	}
	if !settings.Configured() {
		return SignedRedirect{}, ErrNotConfigured
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return SignedRedirect{}, fmt.Errorf("order lookup: %w", err)
	}

	req := RedirectRequest{
		MerchantID: settings.MerchantID,
		OrderID:    order.ID,
		OrderTotal: order.OrderTotal,
	}

	if order.BillingAddressID != nil {
		billing, err := s.billingDetails(ctx, *order.BillingAddressID)
		if err != nil {
			return SignedRedirect{}, err
		}
		req.Billing = billing
	}

	return BuildRedirect(req, settings.HashKey, s.gatewayURL), nil
}

func (s *Service) billingDetails(ctx context.Context, addressID int64) (*BillingDetails, error) {
	addr, err := s.addresses.GetByID(ctx, addressID)
	if err != nil {
		return nil, fmt.Errorf("address lookup: %w", err)
	}
	if addr == nil {
		return nil, nil
	}

	bd := &BillingDetails{
		FirstName:   addr.FirstName,
		LastName:    addr.LastName,
		Email:       addr.Email,
		PhoneNumber: addr.PhoneNumber,
		Address1:    addr.Address1,
		Address2:    addr.Address2,
		City:        addr.City,
		PostalCode:  addr.ZipPostalCode,
	}

	if addr.StateProvinceID != nil {
		state, err := s.directory.GetStateProvinceByID(ctx, *addr.StateProvinceID)
		if err != nil {
			return nil, fmt.Errorf("state lookup: %w", err)
		}
		if state != nil {
			bd.ProvinceCode = state.Abbreviation
		}
	}
	if addr.CountryID != nil {
		country, err := s.directory.GetCountryByID(ctx, *addr.CountryID)
		if err != nil {
			return nil, fmt.Errorf("country lookup: %w", err)
		}
		if country != nil {
			bd.CountryCode = country.TwoLetterISOCode
		}
	}
	return bd, nil
}

// AdditionalHandlingFee computes the configured handling fee for a cart
// total, either fixed or as a percentage of the total.
func (s *Service) AdditionalHandlingFee(ctx context.Context, cartTotal decimal.Decimal) (decimal.Decimal, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("load settings: %w", err)
	}
	if settings.AdditionalFeePercentage {
		return cartTotal.Mul(settings.AdditionalFee).Div(decimal.NewFromInt(100)).RoundBank(2), nil
	}
	return settings.AdditionalFee.RoundBank(2), nil
}

// ProcessReturn handles the customer's browser return. It only records what
// the gateway sent; it has no authority over order state. The bool result
// tells the handler whether to show the completion page or fall back home.
func (s *Service) ProcessReturn(ctx context.Context, n Notification) (int64, bool) {
	orderID, err := n.OrderNumber()
	if err != nil {
		return 0, false
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return 0, false
	}

	note := &domain.OrderNote{
		OrderID:   order.ID,
		Note:      n.Dump("Bambora payment result:"),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notes.Append(ctx, note); err != nil {
		s.log.Error("bambora payment result: append order note",
			zap.Int64("order_id", order.ID),
			zap.Error(err))
	}
	return order.ID, true
}

// ProcessNotification handles the authoritative server-to-server callback.
// Every outcome ends in the same empty acknowledgment, so nothing is
// returned; failures are logged and leave the order untouched.
func (s *Service) ProcessNotification(ctx context.Context, n Notification) {
	orderID, err := n.OrderNumber()
	if err != nil {
		return
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		s.log.Error("bambora response notification: order is not found",
			zap.Int64("order_id", orderID),
			zap.String("parameters", n.Dump("Bambora response notification:")),
			zap.Error(err))
		return
	}

	note := &domain.OrderNote{
		OrderID:   order.ID,
		Note:      n.Dump("Bambora response notification:"),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notes.Append(ctx, note); err != nil {
		s.log.Error("bambora response notification: append order note",
			zap.Int64("order_id", order.ID),
			zap.Error(err))
	}

	amount, err := n.Amount()
	if err != nil {
		s.log.Error("bambora response notification: invalid amount",
			zap.Int64("order_id", order.ID),
			zap.String("message_text", n.MessageText()))
		return
	}

	if !amount.RoundBank(2).Equal(order.OrderTotal.RoundBank(2)) {
		s.log.Error("bambora response notification: returned total does not equal order total",
			zap.Int64("order_id", order.ID),
			zap.String("returned_total", amount.String()),
			zap.String("order_total", order.OrderTotal.String()))
		return
	}

	// declined and duplicate notifications are expected traffic, not errors
	if !n.Approved() {
		return
	}

	changed, err := s.orderWriter.MarkPaidIdempotent(ctx, order.ID, n.TransactionID(), time.Now().UTC())
	if err != nil {
		s.log.Error("bambora response notification: mark order as paid",
			zap.Int64("order_id", order.ID),
			zap.Error(err))
		return
	}
	if !changed {
		s.log.Info("bambora response notification: order no longer eligible for paid transition",
			zap.Int64("order_id", order.ID))
	}
}
