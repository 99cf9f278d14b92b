package http

import (
	"net/http"
	"time"

	"taproom/internal/core/application/usecases/commands"
	"taproom/internal/core/application/usecases/queries"
	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers are the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	StartSession            commands.StartSessionCommandHandler
	SelectLocation          commands.SelectLocationCommandHandler
	AddToCart               commands.AddToCartCommandHandler
	ResolveAddConflict      commands.ResolveAddConflictCommandHandler
	RemoveFromCart          commands.RemoveFromCartCommandHandler
	UpdateQuantity          commands.UpdateQuantityCommandHandler
	RequestCheckout         commands.RequestCheckoutCommandHandler
	ResolveCheckoutConflict commands.ResolveCheckoutConflictCommandHandler
	ResolveUpsell           commands.ResolveUpsellCommandHandler
	UpdateCheckoutForm      commands.UpdateCheckoutFormCommandHandler
	SubmitOrder             commands.SubmitOrderCommandHandler
	CancelCheckout          commands.CancelCheckoutCommandHandler
	DismissConfirmation     commands.DismissConfirmationCommandHandler

	// Query handlers
	GetCatalog       queries.GetCatalogQueryHandler
	GetSession       queries.GetSessionQueryHandler
	GetKegCalculator queries.GetKegCalculatorQueryHandler
	GetPendingOrders queries.GetPendingOrdersQueryHandler
}

// Server implements ServerInterface on top of the engine use cases.
type Server struct {
	h     Handlers
	clock func() time.Time
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates the HTTP server. clock stamps new sessions and submitted orders.
func NewServer(handlers Handlers, clock func() time.Time) *Server {
	if clock == nil {
		clock = time.Now
	}
	return &Server{h: handlers, clock: clock}
}

// GetCatalog handles GET /api/v1/catalog - the catalog priced for a store.
func (s *Server) GetCatalog(ctx echo.Context, params GetCatalogParams) error {
	location, err := parseLocation(params.Location)
	if err != nil {
		return errorJSON(ctx, err)
	}
	query, err := queries.NewGetCatalogQuery(location)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resp, err := s.h.GetCatalog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Catalog{Location: resp.Location.Code(), Products: toProducts(resp.Products)})
}

// GetKegCalculator handles GET /api/v1/calculator.
func (s *Server) GetKegCalculator(ctx echo.Context, params GetKegCalculatorParams) error {
	location, err := parseLocation(params.Location)
	if err != nil {
		return errorJSON(ctx, err)
	}
	query, err := queries.NewGetKegCalculatorQuery(params.Guests, params.Hours, params.DrinkersPercent, location)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resp, err := s.h.GetKegCalculator.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Calculator{
		Liters:   resp.Liters,
		Category: resp.Category.Code(),
		Kegs:     toProducts(resp.Kegs),
	})
}

// GetPendingOrders handles GET /api/v1/orders/pending - the relay backlog.
func (s *Server) GetPendingOrders(ctx echo.Context, params GetPendingOrdersParams) error {
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}
	query, err := queries.NewGetPendingOrdersQuery(limit)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orders, err := s.h.GetPendingOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]PendingOrder, len(orders))
	for i, o := range orders {
		response[i] = PendingOrder{
			ID:           o.ID.String(),
			Location:     o.Location.Code(),
			CustomerName: o.CustomerName,
			Total:        o.Total.String(),
			CreatedAt:    o.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// StartSession handles POST /api/v1/sessions.
func (s *Server) StartSession(ctx echo.Context) error {
	var req LocationRequest
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&req); err != nil {
			return invalidBody(ctx)
		}
	}

	location, err := kernel.ParseLocation(req.Location)
	if err != nil {
		return errorJSON(ctx, err)
	}
	cmd, err := commands.NewStartSessionCommand(kernel.NewUUID(), location, s.clock())
	if err != nil {
		return errorJSON(ctx, err)
	}
	if err = s.h.StartSession.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, SessionCreated{ID: cmd.SessionID().String()})
}

// GetSession handles GET /api/v1/sessions/{sessionId}.
func (s *Server) GetSession(ctx echo.Context, sessionID openapi_types.UUID) error {
	query, err := queries.NewGetSessionQuery(toUUID(sessionID))
	if err != nil {
		return errorJSON(ctx, err)
	}

	resp, err := s.h.GetSession.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toSession(resp))
}

// SelectLocation handles PUT /api/v1/sessions/{sessionId}/location.
func (s *Server) SelectLocation(ctx echo.Context, sessionID openapi_types.UUID) error {
	var req LocationRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	location, err := kernel.ParseLocation(req.Location)
	if err != nil {
		return errorJSON(ctx, err)
	}
	cmd, err := commands.NewSelectLocationCommand(toUUID(sessionID), location)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if err = s.h.SelectLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddToCart handles POST /api/v1/sessions/{sessionId}/cart/items.
// A store conflict is answered with 409 and the pending item stays on the session.
func (s *Server) AddToCart(ctx echo.Context, sessionID openapi_types.UUID) error {
	var req AddToCartRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	extras, err := req.extras()
	if err != nil {
		return errorJSON(ctx, err)
	}
	cmd, err := commands.NewAddToCartCommand(toUUID(sessionID), catalog.ProductID(req.ProductID), extras)
	if err != nil {
		return errorJSON(ctx, err)
	}

	conflict, err := s.h.AddToCart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if conflict != nil {
		return ctx.JSON(http.StatusConflict, AddToCartResult{Conflict: toAddConflict(conflict)})
	}
	return ctx.JSON(http.StatusOK, AddToCartResult{Accepted: true})
}

// UpdateQuantity handles PATCH /api/v1/sessions/{sessionId}/cart/items/{productId}.
func (s *Server) UpdateQuantity(ctx echo.Context, sessionID openapi_types.UUID, productID string) error {
	var req QuantityRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewUpdateQuantityCommand(toUUID(sessionID), catalog.ProductID(productID), req.Delta)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if err = s.h.UpdateQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveFromCart handles DELETE /api/v1/sessions/{sessionId}/cart/items/{productId}.
func (s *Server) RemoveFromCart(ctx echo.Context, sessionID openapi_types.UUID, productID string) error {
	cmd, err := commands.NewRemoveFromCartCommand(toUUID(sessionID), catalog.ProductID(productID))
	if err != nil {
		return errorJSON(ctx, err)
	}
	if err = s.h.RemoveFromCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ResolveAddConflict handles POST /api/v1/sessions/{sessionId}/cart/conflict.
func (s *Server) ResolveAddConflict(ctx echo.Context, sessionID openapi_types.UUID) error {
	var req ChoiceRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	choice, err := cart.ParseAddConflictChoice(req.Choice)
	if err != nil {
		return errorJSON(ctx, err)
	}
	cmd, err := commands.NewResolveAddConflictCommand(toUUID(sessionID), choice)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if err = s.h.ResolveAddConflict.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RequestCheckout handles POST /api/v1/sessions/{sessionId}/checkout.
func (s *Server) RequestCheckout(ctx echo.Context, sessionID openapi_types.UUID) error {
	cmd, err := commands.NewRequestCheckoutCommand(toUUID(sessionID))
	if err != nil {
		return errorJSON(ctx, err)
	}

	phase, err := s.h.RequestCheckout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, PhaseResult{Phase: phase.String()})
}

// ResolveCheckoutConflict handles POST /api/v1/sessions/{sessionId}/checkout/conflict.
func (s *Server) ResolveCheckoutConflict(ctx echo.Context, sessionID openapi_types.UUID) error {
	var req ChoiceRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	choice, err := cart.ParseCheckoutConflictChoice(req.Choice)
	if err != nil {
		return errorJSON(ctx, err)
	}
	cmd, err := commands.NewResolveCheckoutConflictCommand(toUUID(sessionID), choice)
	if err != nil {
		return errorJSON(ctx, err)
	}

	phase, err := s.h.ResolveCheckoutConflict.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, PhaseResult{Phase: phase.String()})
}

// ResolveUpsell handles POST /api/v1/sessions/{sessionId}/checkout/upsell.
func (s *Server) ResolveUpsell(ctx echo.Context, sessionID openapi_types.UUID) error {
	var req UpsellRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	selection, err := req.selection()
	if err != nil {
		return errorJSON(ctx, err)
	}
	cmd, err := commands.NewResolveUpsellCommand(toUUID(sessionID), selection)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if err = s.h.ResolveUpsell.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCheckoutForm handles PUT /api/v1/sessions/{sessionId}/checkout/form.
func (s *Server) UpdateCheckoutForm(ctx echo.Context, sessionID openapi_types.UUID) error {
	var req CheckoutForm
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	form, err := req.toDomain()
	if err != nil {
		return errorJSON(ctx, err)
	}
	cmd, err := commands.NewUpdateCheckoutFormCommand(toUUID(sessionID), form)
	if err != nil {
		return errorJSON(ctx, err)
	}

	missing, err := s.h.UpdateCheckoutForm.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, MissingFields{MissingFields: fieldCodes(missing)})
}

// SubmitOrder handles POST /api/v1/sessions/{sessionId}/checkout/submit.
// An incomplete form is answered with 422 and the missing fields.
func (s *Server) SubmitOrder(ctx echo.Context, sessionID openapi_types.UUID) error {
	var req CheckoutForm
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	form, err := req.toDomain()
	if err != nil {
		return errorJSON(ctx, err)
	}
	cmd, err := commands.NewSubmitOrderCommand(toUUID(sessionID), kernel.NewUUID(), form, s.clock())
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.h.SubmitOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if len(result.Missing) > 0 {
		return ctx.JSON(http.StatusUnprocessableEntity, MissingFields{MissingFields: fieldCodes(result.Missing)})
	}

	response := SubmittedOrder{
		OrderID:       result.Order.ID().String(),
		Total:         result.Order.Total().String(),
		HandoffFailed: result.Receipt == nil,
	}
	if result.Receipt != nil {
		response.Channel = result.Receipt.Channel
		response.Link = result.Receipt.Link
		response.Message = result.Receipt.Message
	}
	return ctx.JSON(http.StatusCreated, response)
}

// CancelCheckout handles POST /api/v1/sessions/{sessionId}/checkout/cancel.
func (s *Server) CancelCheckout(ctx echo.Context, sessionID openapi_types.UUID) error {
	cmd, err := commands.NewCancelCheckoutCommand(toUUID(sessionID))
	if err != nil {
		return errorJSON(ctx, err)
	}
	if err = s.h.CancelCheckout.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DismissConfirmation handles POST /api/v1/sessions/{sessionId}/checkout/dismiss.
func (s *Server) DismissConfirmation(ctx echo.Context, sessionID openapi_types.UUID) error {
	cmd, err := commands.NewDismissConfirmationCommand(toUUID(sessionID))
	if err != nil {
		return errorJSON(ctx, err)
	}
	if err = s.h.DismissConfirmation.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// toUUID converts a bound path parameter. The nil UUID maps to the zero
// kernel.UUID, which every command constructor rejects.
func toUUID(id openapi_types.UUID) kernel.UUID {
	u, _ := kernel.UUIDFromBytes(id[:])
	return u
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}
