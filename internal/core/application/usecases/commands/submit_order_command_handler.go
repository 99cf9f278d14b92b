package commands

import (
	"context"
	"log/slog"

	"taproom/internal/core/domain/model/checkout"
	"taproom/internal/core/domain/model/order"
	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/domain/services"
	"taproom/internal/core/ports"
)

// SubmitOrderResult is either the missing fields or the submitted order.
// Receipt is nil when the handoff failed; the order is submitted regardless.
type SubmitOrderResult struct {
	Missing []checkout.Field
	Order   *order.Order
	Receipt *ports.HandoffReceipt
}

// SubmitOrderCommandHandler assembles the order, marks the session Submitted
// and hands the order to the store operator.
type SubmitOrderCommandHandler struct {
	sessions ports.SessionRepository
	flow     services.CheckoutFlow
	handoff  ports.OrderHandoff
	logger   *slog.Logger
}

func NewSubmitOrderCommandHandler(
	sessions ports.SessionRepository,
	flow services.CheckoutFlow,
	handoff ports.OrderHandoff,
	logger *slog.Logger,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		sessions: sessions,
		flow:     flow,
		handoff:  handoff,
		logger:   logger.With("component", "submit_order"),
	}
}

// Handle submits the order. An incomplete form is not an error: the result
// lists the missing fields and nothing changes besides the stored form.
// Handoff failures are logged and do not undo the submission.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (SubmitOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitOrderResult{}, err
	}

	var result SubmitOrderResult
	err := h.sessions.Modify(ctx, cmd.SessionID(), func(s *session.Session) error {
		o, missing, err := h.flow.Submit(s, cmd.Form(), cmd.OrderID(), cmd.SubmittedAt())
		if err != nil {
			return err
		}
		result = SubmitOrderResult{Missing: missing, Order: o}
		return nil
	})
	if err != nil {
		return SubmitOrderResult{}, err
	}
	if result.Order == nil {
		return result, nil
	}

	receipt, err := h.handoff.Handoff(ctx, result.Order)
	if err != nil {
		h.logger.ErrorContext(ctx, "order handoff failed",
			"order_id", result.Order.ID().String(),
			"location", result.Order.Location().Code(),
			"error", err,
		)
		return result, nil
	}

	h.logger.InfoContext(ctx, "order handed off",
		"order_id", result.Order.ID().String(),
		"channel", receipt.Channel,
		"total", result.Order.Total().String(),
	)
	result.Receipt = &receipt
	return result, nil
}
