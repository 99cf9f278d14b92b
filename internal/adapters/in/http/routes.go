package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists the operations of openapi.yaml. Path and query
// parameters arrive already bound.
type ServerInterface interface {
	GetCatalog(ctx echo.Context, params GetCatalogParams) error
	GetKegCalculator(ctx echo.Context, params GetKegCalculatorParams) error
	GetPendingOrders(ctx echo.Context, params GetPendingOrdersParams) error

	StartSession(ctx echo.Context) error
	GetSession(ctx echo.Context, sessionID openapi_types.UUID) error
	SelectLocation(ctx echo.Context, sessionID openapi_types.UUID) error

	AddToCart(ctx echo.Context, sessionID openapi_types.UUID) error
	UpdateQuantity(ctx echo.Context, sessionID openapi_types.UUID, productID string) error
	RemoveFromCart(ctx echo.Context, sessionID openapi_types.UUID, productID string) error
	ResolveAddConflict(ctx echo.Context, sessionID openapi_types.UUID) error

	RequestCheckout(ctx echo.Context, sessionID openapi_types.UUID) error
	ResolveCheckoutConflict(ctx echo.Context, sessionID openapi_types.UUID) error
	ResolveUpsell(ctx echo.Context, sessionID openapi_types.UUID) error
	UpdateCheckoutForm(ctx echo.Context, sessionID openapi_types.UUID) error
	SubmitOrder(ctx echo.Context, sessionID openapi_types.UUID) error
	CancelCheckout(ctx echo.Context, sessionID openapi_types.UUID) error
	DismissConfirmation(ctx echo.Context, sessionID openapi_types.UUID) error
}

type GetCatalogParams struct {
	Location *string
}

type GetKegCalculatorParams struct {
	Guests          int
	Hours           int
	DrinkersPercent int
	Location        *string
}

type GetPendingOrdersParams struct {
	Limit *int
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used to register routes.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts si under baseURL, e.g. "" or "/taproom".
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string) {
	w := serverInterfaceWrapper{handler: si}

	router.GET(baseURL+"/api/v1/catalog", w.GetCatalog)
	router.GET(baseURL+"/api/v1/calculator", w.GetKegCalculator)
	router.GET(baseURL+"/api/v1/orders/pending", w.GetPendingOrders)

	router.POST(baseURL+"/api/v1/sessions", w.handler.StartSession)
	router.GET(baseURL+"/api/v1/sessions/:sessionId", w.withSession(si.GetSession))
	router.PUT(baseURL+"/api/v1/sessions/:sessionId/location", w.withSession(si.SelectLocation))

	router.POST(baseURL+"/api/v1/sessions/:sessionId/cart/items", w.withSession(si.AddToCart))
	router.PATCH(baseURL+"/api/v1/sessions/:sessionId/cart/items/:productId", w.withSessionAndProduct(si.UpdateQuantity))
	router.DELETE(baseURL+"/api/v1/sessions/:sessionId/cart/items/:productId", w.withSessionAndProduct(si.RemoveFromCart))
	router.POST(baseURL+"/api/v1/sessions/:sessionId/cart/conflict", w.withSession(si.ResolveAddConflict))

	router.POST(baseURL+"/api/v1/sessions/:sessionId/checkout", w.withSession(si.RequestCheckout))
	router.POST(baseURL+"/api/v1/sessions/:sessionId/checkout/conflict", w.withSession(si.ResolveCheckoutConflict))
	router.POST(baseURL+"/api/v1/sessions/:sessionId/checkout/upsell", w.withSession(si.ResolveUpsell))
	router.PUT(baseURL+"/api/v1/sessions/:sessionId/checkout/form", w.withSession(si.UpdateCheckoutForm))
	router.POST(baseURL+"/api/v1/sessions/:sessionId/checkout/submit", w.withSession(si.SubmitOrder))
	router.POST(baseURL+"/api/v1/sessions/:sessionId/checkout/cancel", w.withSession(si.CancelCheckout))
	router.POST(baseURL+"/api/v1/sessions/:sessionId/checkout/dismiss", w.withSession(si.DismissConfirmation))
}

type serverInterfaceWrapper struct {
	handler ServerInterface
}

func (w serverInterfaceWrapper) GetCatalog(ctx echo.Context) error {
	var params GetCatalogParams

	if err := runtime.BindQueryParameter("form", true, false, "location", ctx.QueryParams(), &params.Location); err != nil {
		return badParameter(ctx, "location", err)
	}
	return w.handler.GetCatalog(ctx, params)
}

func (w serverInterfaceWrapper) GetKegCalculator(ctx echo.Context) error {
	var params GetKegCalculatorParams

	if err := runtime.BindQueryParameter("form", true, true, "guests", ctx.QueryParams(), &params.Guests); err != nil {
		return badParameter(ctx, "guests", err)
	}
	if err := runtime.BindQueryParameter("form", true, true, "hours", ctx.QueryParams(), &params.Hours); err != nil {
		return badParameter(ctx, "hours", err)
	}
	if err := runtime.BindQueryParameter("form", true, true, "drinkersPercent", ctx.QueryParams(), &params.DrinkersPercent); err != nil {
		return badParameter(ctx, "drinkersPercent", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "location", ctx.QueryParams(), &params.Location); err != nil {
		return badParameter(ctx, "location", err)
	}
	return w.handler.GetKegCalculator(ctx, params)
}

func (w serverInterfaceWrapper) GetPendingOrders(ctx echo.Context) error {
	var params GetPendingOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return badParameter(ctx, "limit", err)
	}
	return w.handler.GetPendingOrders(ctx, params)
}

func (w serverInterfaceWrapper) withSession(
	next func(ctx echo.Context, sessionID openapi_types.UUID) error,
) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		sessionID, err := bindSessionID(ctx)
		if err != nil {
			return badParameter(ctx, "sessionId", err)
		}
		return next(ctx, sessionID)
	}
}

func (w serverInterfaceWrapper) withSessionAndProduct(
	next func(ctx echo.Context, sessionID openapi_types.UUID, productID string) error,
) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		sessionID, err := bindSessionID(ctx)
		if err != nil {
			return badParameter(ctx, "sessionId", err)
		}

		var productID string
		err = runtime.BindStyledParameterWithOptions("simple", "productId", ctx.Param("productId"), &productID,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
		if err != nil {
			return badParameter(ctx, "productId", err)
		}
		return next(ctx, sessionID, productID)
	}
}

func bindSessionID(ctx echo.Context) (openapi_types.UUID, error) {
	var sessionID openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "sessionId", ctx.Param("sessionId"), &sessionID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return sessionID, err
}

func badParameter(ctx echo.Context, name string, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "Invalid format for parameter " + name + ": " + err.Error(),
	})
}
