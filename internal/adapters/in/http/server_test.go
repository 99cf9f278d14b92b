package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	taphttp "taproom/internal/adapters/in/http"
	"taproom/internal/adapters/out/memory/sessionrepo"
	"taproom/internal/adapters/out/whatsapp"
	"taproom/internal/core/application/usecases/commands"
	"taproom/internal/core/application/usecases/queries"
	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/order"
	"taproom/internal/core/domain/services"
	"taproom/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 17, 19, 0, 0, 0, time.UTC)

// stubHandoff renders the real operator message without journaling.
type stubHandoff struct{}

func (stubHandoff) Handoff(_ context.Context, o *order.Order) (ports.HandoffReceipt, error) {
	msg := whatsapp.RenderMessage(o)
	return ports.HandoffReceipt{
		Channel: "5545988175171",
		Message: msg,
		Link:    whatsapp.Link("5545988175171", msg),
	}, nil
}

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	cat, err := catalog.DefaultCatalog()
	require.NoError(t, err)
	table, err := catalog.DefaultPriceTable()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := services.NewPricingResolver(table)
	guard := services.NewCartGuard(cat, resolver)
	recommender := services.NewUpsellRecommender(cat, resolver, services.DefaultAlwaysSuggest()...)
	flow := services.NewCheckoutFlow(guard, recommender, services.NewOrderAssembler(kernel.Reais(10)))
	sessions := sessionrepo.NewInMemorySessionRepository(func() time.Time { return now })

	server := taphttp.NewServer(taphttp.Handlers{
		StartSession:            commands.NewStartSessionCommandHandler(sessions),
		SelectLocation:          commands.NewSelectLocationCommandHandler(sessions, guard),
		AddToCart:               commands.NewAddToCartCommandHandler(sessions, guard),
		ResolveAddConflict:      commands.NewResolveAddConflictCommandHandler(sessions, guard),
		RemoveFromCart:          commands.NewRemoveFromCartCommandHandler(sessions),
		UpdateQuantity:          commands.NewUpdateQuantityCommandHandler(sessions),
		RequestCheckout:         commands.NewRequestCheckoutCommandHandler(sessions, flow),
		ResolveCheckoutConflict: commands.NewResolveCheckoutConflictCommandHandler(sessions, flow),
		ResolveUpsell:           commands.NewResolveUpsellCommandHandler(sessions, flow),
		UpdateCheckoutForm:      commands.NewUpdateCheckoutFormCommandHandler(sessions, flow),
		SubmitOrder:             commands.NewSubmitOrderCommandHandler(sessions, flow, stubHandoff{}, logger),
		CancelCheckout:          commands.NewCancelCheckoutCommandHandler(sessions),
		DismissConfirmation:     commands.NewDismissConfirmationCommandHandler(sessions),
		GetCatalog:              queries.NewGetCatalogQueryHandler(cat, resolver),
		GetSession:              queries.NewGetSessionQueryHandler(sessions),
		GetKegCalculator:        queries.NewGetKegCalculatorQueryHandler(cat, resolver),
	}, func() time.Time { return now })

	e, err := taphttp.NewRouter(t.Context(), server, logger)
	require.NoError(t, err)
	return e
}

func call(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func startSession(t *testing.T, e *echo.Echo, location string) string {
	t.Helper()

	rec := call(t, e, http.MethodPost, "/api/v1/sessions", `{"location":"`+location+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[taphttp.SessionCreated](t, rec).ID
}

func TestHealth(t *testing.T) {
	e := newTestRouter(t)

	rec := call(t, e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestGetCatalog(t *testing.T) {
	e := newTestRouter(t)

	rec := call(t, e, http.MethodGet, "/api/v1/catalog?location=foz-do-iguacu", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[taphttp.Catalog](t, rec)
	assert.Equal(t, "foz-do-iguacu", resp.Location)
	require.NotEmpty(t, resp.Products)
	assert.Equal(t, string(catalog.GrowlerPilsen), resp.Products[0].ID)
	assert.Equal(t, "16.00", resp.Products[0].BasePrice)
	assert.Equal(t, "18.00", resp.Products[0].Price)

	rec = call(t, e, http.MethodGet, "/api/v1/catalog?location=curitiba", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetKegCalculator(t *testing.T) {
	e := newTestRouter(t)

	rec := call(t, e, http.MethodGet, "/api/v1/calculator?guests=20&hours=4&drinkersPercent=50", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[taphttp.Calculator](t, rec)
	assert.Equal(t, 20, resp.Liters)
	assert.Equal(t, "keg-30l", resp.Category)
	assert.NotEmpty(t, resp.Kegs)

	rec = call(t, e, http.MethodGet, "/api/v1/calculator?guests=20&hours=4", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessions_NotFoundAndBadID(t *testing.T) {
	e := newTestRouter(t)

	rec := call(t, e, http.MethodGet, "/api/v1/sessions/"+kernel.NewUUID().String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(t, e, http.MethodGet, "/api/v1/sessions/not-a-session", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_EmptyCartIsRejected(t *testing.T) {
	e := newTestRouter(t)
	id := startSession(t, e, "marechal-candido-rondon")

	rec := call(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/checkout", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAddToCart_InvalidMugsAreRejectedByTheSchema(t *testing.T) {
	e := newTestRouter(t)
	id := startSession(t, e, "marechal-candido-rondon")

	rec := call(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/cart/items",
		`{"productId":"keg-pilsen-30","mugs":12}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateQuantity_HugeDeltaIsRejectedByTheSchema(t *testing.T) {
	e := newTestRouter(t)
	id := startSession(t, e, "marechal-candido-rondon")
	item := "/api/v1/sessions/" + id + "/cart/items/growler-pilsen-cristal-1l"

	rec := call(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/cart/items", `{"productId":"growler-pilsen-cristal-1l"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = call(t, e, http.MethodPatch, item, `{"delta":9223372036854775807}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(t, e, http.MethodPatch, item, `{"delta":2}`)
	assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
}

func TestGrowlerCheckout_EndToEnd(t *testing.T) {
	e := newTestRouter(t)
	id := startSession(t, e, "marechal-candido-rondon")
	base := "/api/v1/sessions/" + id

	rec := call(t, e, http.MethodPost, base+"/cart/items", `{"productId":"growler-pilsen-cristal-1l"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[taphttp.AddToCartResult](t, rec).Accepted)

	// switching store keeps the cart pinned, a second add conflicts
	rec = call(t, e, http.MethodPut, base+"/location", `{"location":"foz-do-iguacu"}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = call(t, e, http.MethodPost, base+"/cart/items", `{"productId":"growler-pilsen-cristal-1l"}`)
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	conflict := decode[taphttp.AddToCartResult](t, rec).Conflict
	require.NotNil(t, conflict)
	assert.Equal(t, "marechal-candido-rondon", conflict.CartLocation)
	assert.Equal(t, "foz-do-iguacu", conflict.RequestedLocation)

	rec = call(t, e, http.MethodPost, base+"/cart/conflict", `{"choice":"cancel"}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = call(t, e, http.MethodPut, base+"/location", `{"location":"marechal-candido-rondon"}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = call(t, e, http.MethodPost, base+"/checkout", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "ReviewingUpsell", decode[taphttp.PhaseResult](t, rec).Phase)

	rec = call(t, e, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[taphttp.Session](t, rec)
	require.NotNil(t, view.Offer)
	assert.Equal(t, "growler", view.Offer.Kind)
	assert.NotEmpty(t, view.Offer.Candidates)

	rec = call(t, e, http.MethodPost, base+"/checkout/upsell", `{"decline":true}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = call(t, e, http.MethodPut, base+"/checkout/form", `{"name":"Ana"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	missing := decode[taphttp.MissingFields](t, rec).MissingFields
	assert.Contains(t, missing, "phone")
	assert.Contains(t, missing, "paymentMethod")
	assert.NotContains(t, missing, "name")

	rec = call(t, e, http.MethodPost, base+"/checkout/submit", `{"name":"Ana"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	rec = call(t, e, http.MethodPost, base+"/checkout/submit", `{
		"name": "Ana",
		"phone": "45 99999-0000",
		"deliveryMethod": "delivery",
		"deliveryAddress": {"street": "Rua Sete de Setembro 50", "neighborhood": "Centro", "city": "Marechal Cândido Rondon"},
		"paymentMethod": "pix"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	submitted := decode[taphttp.SubmittedOrder](t, rec)
	assert.Equal(t, "26.00", submitted.Total)
	assert.False(t, submitted.HandoffFailed)
	assert.True(t, strings.HasPrefix(submitted.Link, "https://wa.me/5545988175171?text="))
	assert.Contains(t, submitted.Message, "• 1x Pilsen Cristal 1L (R$ 16.00)")

	rec = call(t, e, http.MethodGet, base, "")
	view = decode[taphttp.Session](t, rec)
	assert.Equal(t, "Submitted", view.Phase)
	assert.Equal(t, submitted.OrderID, view.LastOrderID)

	rec = call(t, e, http.MethodPost, base+"/checkout/dismiss", "")
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = call(t, e, http.MethodGet, base, "")
	view = decode[taphttp.Session](t, rec)
	assert.Equal(t, "Browsing", view.Phase)
	assert.Empty(t, view.Items)
	assert.Empty(t, view.Form.Name)
}
