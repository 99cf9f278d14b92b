package services_test

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/checkout"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/order"
	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/domain/model/upsell"
	"taproom/internal/core/domain/services"

	"github.com/cucumber/godog"
)

type checkoutTestContext struct {
	guard    services.CartGuard
	flow     services.CheckoutFlow
	session  *session.Session
	conflict *cart.AddConflict
	order    *order.Order
	missing  []checkout.Field
	err      error
}

func (c *checkoutTestContext) reset() error {
	cat, err := catalog.DefaultCatalog()
	if err != nil {
		return err
	}
	table, err := catalog.DefaultPriceTable()
	if err != nil {
		return err
	}

	resolver := services.NewPricingResolver(table)
	c.guard = services.NewCartGuard(cat, resolver)
	recommender := services.NewUpsellRecommender(cat, resolver, services.DefaultAlwaysSuggest()...)
	c.flow = services.NewCheckoutFlow(c.guard, recommender, services.NewOrderAssembler(kernel.Reais(10)))
	c.session = nil
	c.conflict = nil
	c.order = nil
	c.missing = nil
	c.err = nil
	return nil
}

func (c *checkoutTestContext) aNewSession() error {
	s, err := session.NewSession(kernel.NewUUID(), time.Now())
	if err != nil {
		return err
	}
	c.session = s
	return nil
}

func (c *checkoutTestContext) theCustomerIsAt(code string) error {
	location, err := kernel.ParseLocation(code)
	if err != nil {
		return err
	}
	if err = c.session.SelectLocation(location); err != nil {
		return err
	}
	c.guard.AdoptLocation(c.session.Cart(), location)
	return nil
}

func (c *checkoutTestContext) theCustomerAdds(productID string) error {
	conflict, err := c.guard.RequestAdd(c.session.Cart(), catalog.ProductID(productID),
		cart.ExtrasPatch{}, false, c.session.Location())
	if err != nil {
		return err
	}
	c.conflict = conflict
	if conflict != nil {
		c.session.HoldAddConflict(conflict)
	} else {
		c.session.DiscardAddConflict()
	}
	return nil
}

func (c *checkoutTestContext) theAddIsAccepted() error {
	if c.conflict != nil {
		return fmt.Errorf("expected the add to be accepted, got a conflict with %s", c.conflict.CartLocation)
	}
	return nil
}

func (c *checkoutTestContext) theAddIsRejectedWithAConflict(from, to string) error {
	if c.conflict == nil {
		return errors.New("expected an add conflict")
	}
	if c.conflict.CartLocation.Code() != from || c.conflict.RequestedLocation.Code() != to {
		return fmt.Errorf("expected conflict %s -> %s, got %s -> %s",
			from, to, c.conflict.CartLocation.Code(), c.conflict.RequestedLocation.Code())
	}
	return nil
}

func (c *checkoutTestContext) theCustomerAnswersTheAddConflictWith(answer string) error {
	choice, err := cart.ParseAddConflictChoice(answer)
	if err != nil {
		return err
	}
	conflict, err := c.session.TakeAddConflict()
	if err != nil {
		return err
	}
	return c.guard.ResolveAddConflict(c.session.Cart(), conflict, choice)
}

func (c *checkoutTestContext) theCustomerAnswersTheAddConflictTooLate(answer string) error {
	c.err = c.theCustomerAnswersTheAddConflictWith(answer)
	return nil
}

func (c *checkoutTestContext) theAnswerIsRejectedAsThereIsNoPendingAdd() error {
	if !errors.Is(c.err, session.ErrNoPendingAddConflict) {
		return fmt.Errorf("expected ErrNoPendingAddConflict, got %v", c.err)
	}
	return nil
}

func (c *checkoutTestContext) theCartIsPinnedTo(code string) error {
	if got := c.session.Cart().PinnedLocation().Code(); got != code {
		return fmt.Errorf("expected cart pinned to %q, got %q", code, got)
	}
	return nil
}

func (c *checkoutTestContext) theSessionIsAt(code string) error {
	if got := c.session.Location().Code(); got != code {
		return fmt.Errorf("expected session at %q, got %q", code, got)
	}
	return nil
}

func (c *checkoutTestContext) theCartHolds(quantity int, productID, unitPrice string) error {
	item, ok := c.session.Cart().Item(catalog.ProductID(productID))
	if !ok {
		return fmt.Errorf("expected %s in the cart", productID)
	}
	if item.Quantity() != quantity {
		return fmt.Errorf("expected quantity %d, got %d", quantity, item.Quantity())
	}
	if item.UnitPrice().String() != unitPrice {
		return fmt.Errorf("expected unit price %s, got %s", unitPrice, item.UnitPrice())
	}
	return nil
}

func (c *checkoutTestContext) theCartTotalIs(total string) error {
	if got := c.session.Cart().Total().String(); got != total {
		return fmt.Errorf("expected cart total %s, got %s", total, got)
	}
	return nil
}

func (c *checkoutTestContext) theCartIsEmpty() error {
	if !c.session.Cart().IsEmpty() {
		return fmt.Errorf("expected an empty cart, got %d lines", c.session.Cart().Len())
	}
	return nil
}

func (c *checkoutTestContext) theCustomerRequestsCheckout() error {
	c.err = c.flow.RequestCheckout(c.session)
	return nil
}

func (c *checkoutTestContext) checkoutFailsBecauseTheCartIsEmpty() error {
	if !errors.Is(c.err, services.ErrCartIsEmpty) {
		return fmt.Errorf("expected ErrCartIsEmpty, got %v", c.err)
	}
	return nil
}

func (c *checkoutTestContext) theSessionPhaseIs(phase string) error {
	if got := c.session.Phase().String(); got != phase {
		return fmt.Errorf("expected phase %s, got %s (last error: %v)", phase, got, c.err)
	}
	return nil
}

func (c *checkoutTestContext) theCustomerAnswersTheCheckoutConflictWith(answer string) error {
	choice, err := cart.ParseCheckoutConflictChoice(answer)
	if err != nil {
		return err
	}
	return c.flow.ResolveCheckoutConflict(c.session, choice)
}

func (c *checkoutTestContext) theGrowlerOfferShowsCandidates(count int) error {
	offer, ok := c.session.Offer().(*upsell.GrowlerOffer)
	if !ok {
		return fmt.Errorf("expected a growler offer, got %T", c.session.Offer())
	}
	if len(offer.Candidates) != count {
		return fmt.Errorf("expected %d candidates, got %d", count, len(offer.Candidates))
	}
	return nil
}

func (c *checkoutTestContext) theCustomerAcceptsTheUpsellProducts(list string) error {
	var ids []catalog.ProductID
	for _, id := range strings.Split(list, ",") {
		ids = append(ids, catalog.ProductID(strings.TrimSpace(id)))
	}
	return c.flow.ResolveUpsell(c.session, upsell.Selection{Products: ids})
}

func (c *checkoutTestContext) theCustomerAcceptsTheKegAccessories(mugs int) error {
	tier, err := cart.ParseMugsTier(mugs)
	if err != nil {
		return err
	}
	return c.flow.ResolveUpsell(c.session, upsell.Selection{RentTonel: true, Mugs: tier})
}

func (c *checkoutTestContext) theCustomerDeclinesTheUpsell() error {
	return c.flow.ResolveUpsell(c.session, upsell.Selection{Decline: true})
}

func (c *checkoutTestContext) theCustomerSubmitsAPickupOrder(payment string) error {
	method, err := checkout.ParsePaymentMethod(payment)
	if err != nil {
		return err
	}
	c.order, c.missing, c.err = c.flow.Submit(c.session, checkout.Form{
		Name:           "Ana",
		Phone:          "45 99999-0000",
		DeliveryMethod: checkout.Pickup,
		PaymentMethod:  method,
	}, kernel.NewUUID(), time.Now())
	return c.err
}

func (c *checkoutTestContext) theCustomerSubmitsAFormWithOnlyTheName(name string) error {
	c.order, c.missing, c.err = c.flow.Submit(c.session, checkout.Form{Name: name}, kernel.NewUUID(), time.Now())
	return c.err
}

func (c *checkoutTestContext) theOrderTotalIs(total string) error {
	if c.order == nil {
		return fmt.Errorf("expected a submitted order, missing fields: %v", c.missing)
	}
	if got := c.order.Total().String(); got != total {
		return fmt.Errorf("expected order total %s, got %s", total, got)
	}
	return nil
}

func (c *checkoutTestContext) theMissingFieldsInclude(field string) error {
	if !slices.ContainsFunc(c.missing, func(f checkout.Field) bool { return f.String() == field }) {
		return fmt.Errorf("expected %q among missing fields %v", field, c.missing)
	}
	return nil
}

func InitializeCheckoutScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, tc.reset()
	})

	// Given steps
	ctx.Step(`^a new session$`, tc.aNewSession)
	ctx.Step(`^the customer is at "([^"]*)"$`, tc.theCustomerIsAt)

	// When steps
	ctx.Step(`^the customer adds "([^"]*)"$`, tc.theCustomerAdds)
	ctx.Step(`^the customer answers the add conflict with "([^"]*)"$`, tc.theCustomerAnswersTheAddConflictWith)
	ctx.Step(`^the customer later answers the old add conflict with "([^"]*)"$`, tc.theCustomerAnswersTheAddConflictTooLate)
	ctx.Step(`^the customer requests checkout$`, tc.theCustomerRequestsCheckout)
	ctx.Step(`^the customer answers the checkout conflict with "([^"]*)"$`, tc.theCustomerAnswersTheCheckoutConflictWith)
	ctx.Step(`^the customer accepts the upsell products "([^"]*)"$`, tc.theCustomerAcceptsTheUpsellProducts)
	ctx.Step(`^the customer accepts the keg accessories tonel and (\d+) mugs$`, tc.theCustomerAcceptsTheKegAccessories)
	ctx.Step(`^the customer declines the upsell$`, tc.theCustomerDeclinesTheUpsell)
	ctx.Step(`^the customer submits a pickup order paying with "([^"]*)"$`, tc.theCustomerSubmitsAPickupOrder)
	ctx.Step(`^the customer submits a form with only the name "([^"]*)"$`, tc.theCustomerSubmitsAFormWithOnlyTheName)

	// Then steps
	ctx.Step(`^the add is accepted$`, tc.theAddIsAccepted)
	ctx.Step(`^the add is rejected with a conflict from "([^"]*)" to "([^"]*)"$`, tc.theAddIsRejectedWithAConflict)
	ctx.Step(`^the answer is rejected as there is no pending add$`, tc.theAnswerIsRejectedAsThereIsNoPendingAdd)
	ctx.Step(`^the cart is pinned to "([^"]*)"$`, tc.theCartIsPinnedTo)
	ctx.Step(`^the session is at "([^"]*)"$`, tc.theSessionIsAt)
	ctx.Step(`^the cart holds (\d+) x "([^"]*)" at (\d+\.\d{2})$`, tc.theCartHolds)
	ctx.Step(`^the cart total is (\d+\.\d{2})$`, tc.theCartTotalIs)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^checkout fails because the cart is empty$`, tc.checkoutFailsBecauseTheCartIsEmpty)
	ctx.Step(`^the session phase is "([^"]*)"$`, tc.theSessionPhaseIs)
	ctx.Step(`^the growler offer shows (\d+) candidates$`, tc.theGrowlerOfferShowsCandidates)
	ctx.Step(`^the order total is (\d+\.\d{2})$`, tc.theOrderTotalIs)
	ctx.Step(`^the missing fields include "([^"]*)"$`, tc.theMissingFieldsInclude)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeCheckoutScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
