package commands_test

import (
	"errors"
	"testing"

	"taproom/internal/core/application/usecases/commands"
	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/session"
	"taproom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addToCart(t *testing.T, handler commands.AddToCartCommandHandler, id kernel.UUID, productID catalog.ProductID) *cart.AddConflict {
	t.Helper()
	cmd, err := commands.NewAddToCartCommand(id, productID, cart.ExtrasPatch{})
	require.NoError(t, err)
	conflict, err := handler.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return conflict
}

func TestAddToCartCommandHandler_Handle(t *testing.T) {
	e := newEngine(t)

	t.Run("first_add_pins_the_cart_to_the_store", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockSessionRepository)
		s := storedSession(t, repo, kernel.FozDoIguacu)
		repo.On("Modify", ctx, s.ID()).Return(nil)

		handler := commands.NewAddToCartCommandHandler(repo, e.guard)
		conflict := addToCart(t, handler, s.ID(), catalog.GrowlerPilsen)

		assert.Nil(t, conflict)
		item, ok := repo.stored.Cart().Item(catalog.GrowlerPilsen)
		require.True(t, ok)
		assert.Equal(t, "18.00", item.EffectivePrice().String())
		assert.Equal(t, kernel.FozDoIguacu, repo.stored.Cart().PinnedLocation())
	})

	t.Run("store_change_returns_the_conflict_and_keeps_it_on_the_session", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockSessionRepository)
		s := storedSession(t, repo, kernel.MarechalCandidoRondon)
		repo.On("Modify", ctx, s.ID()).Return(nil)
		handler := commands.NewAddToCartCommandHandler(repo, e.guard)
		addToCart(t, handler, s.ID(), catalog.GrowlerPilsen)
		require.NoError(t, repo.stored.SelectLocation(kernel.FozDoIguacu))

		conflict := addToCart(t, handler, s.ID(), catalog.GrowlerSessionIPA)

		require.NotNil(t, conflict)
		assert.Equal(t, kernel.MarechalCandidoRondon, conflict.CartLocation)
		assert.Equal(t, kernel.FozDoIguacu, conflict.RequestedLocation)
		assert.Equal(t, conflict, repo.stored.PendingAddConflict())
		assert.Equal(t, 1, repo.stored.Cart().Len())
	})

	t.Run("unknown_product_leaves_the_session_unchanged", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockSessionRepository)
		s := storedSession(t, repo, kernel.FozDoIguacu)
		repo.On("Modify", ctx, s.ID()).Return(nil)
		cmd, err := commands.NewAddToCartCommand(s.ID(), "growler-unknown", cart.ExtrasPatch{})
		require.NoError(t, err)

		handler := commands.NewAddToCartCommandHandler(repo, e.guard)
		conflict, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Nil(t, conflict)
		assert.Same(t, s, repo.stored)
	})

	t.Run("session_not_found", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockSessionRepository)
		id := kernel.NewUUID()
		repo.On("Modify", ctx, id).Return(errs.NewObjectNotFoundError("session", id)).Once()
		cmd, err := commands.NewAddToCartCommand(id, catalog.GrowlerPilsen, cart.ExtrasPatch{})
		require.NoError(t, err)

		handler := commands.NewAddToCartCommandHandler(repo, e.guard)
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertExpectations(t)
	})
}

func TestResolveAddConflictCommandHandler_Handle(t *testing.T) {
	e := newEngine(t)

	conflicted := func(t *testing.T) (*MockSessionRepository, kernel.UUID) {
		t.Helper()
		repo := new(MockSessionRepository)
		s := storedSession(t, repo, kernel.MarechalCandidoRondon)
		repo.On("Modify", t.Context(), s.ID()).Return(nil)
		handler := commands.NewAddToCartCommandHandler(repo, e.guard)
		addToCart(t, handler, s.ID(), catalog.GrowlerPilsen)
		addToCart(t, handler, s.ID(), catalog.GrowlerWhiteWine)
		require.NoError(t, repo.stored.SelectLocation(kernel.FozDoIguacu))
		require.NotNil(t, addToCart(t, handler, s.ID(), catalog.GrowlerSessionIPA))
		return repo, s.ID()
	}

	t.Run("replace_keeps_only_the_pending_item", func(t *testing.T) {
		repo, id := conflicted(t)
		cmd, err := commands.NewResolveAddConflictCommand(id, cart.DiscardAndReplace)
		require.NoError(t, err)

		handler := commands.NewResolveAddConflictCommandHandler(repo, e.guard)
		require.NoError(t, handler.Handle(t.Context(), cmd))

		c := repo.stored.Cart()
		require.Equal(t, 1, c.Len())
		item, ok := c.Item(catalog.GrowlerSessionIPA)
		require.True(t, ok)
		assert.Equal(t, "24.00", item.EffectivePrice().String())
		assert.Equal(t, kernel.FozDoIguacu, c.PinnedLocation())
		assert.Nil(t, repo.stored.PendingAddConflict())
	})

	t.Run("cancel_leaves_the_cart_untouched", func(t *testing.T) {
		repo, id := conflicted(t)
		cmd, err := commands.NewResolveAddConflictCommand(id, cart.CancelAdd)
		require.NoError(t, err)

		handler := commands.NewResolveAddConflictCommandHandler(repo, e.guard)
		require.NoError(t, handler.Handle(t.Context(), cmd))

		assert.Equal(t, 2, repo.stored.Cart().Len())
		assert.Equal(t, kernel.MarechalCandidoRondon, repo.stored.Cart().PinnedLocation())
		assert.Nil(t, repo.stored.PendingAddConflict())
	})

	t.Run("returning_to_the_cart_store_drops_the_pending_add", func(t *testing.T) {
		ctx := t.Context()
		repo, id := conflicted(t)
		selectLocation := commands.NewSelectLocationCommandHandler(repo, e.guard)
		selectCmd, err := commands.NewSelectLocationCommand(id, kernel.MarechalCandidoRondon)
		require.NoError(t, err)
		require.NoError(t, selectLocation.Handle(ctx, selectCmd))
		addToCart(t, commands.NewAddToCartCommandHandler(repo, e.guard), id, catalog.GrowlerPilsen)

		cmd, err := commands.NewResolveAddConflictCommand(id, cart.DiscardAndReplace)
		require.NoError(t, err)
		handler := commands.NewResolveAddConflictCommandHandler(repo, e.guard)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, session.ErrNoPendingAddConflict)
		assert.Equal(t, kernel.MarechalCandidoRondon, repo.stored.Location())
		assert.Equal(t, kernel.MarechalCandidoRondon, repo.stored.Cart().PinnedLocation())
		assert.Equal(t, 2, repo.stored.Cart().Len())
		item, ok := repo.stored.Cart().Item(catalog.GrowlerPilsen)
		require.True(t, ok)
		assert.Equal(t, 2, item.Quantity())
	})

	t.Run("accepted_add_drops_an_older_conflict", func(t *testing.T) {
		repo, id := conflicted(t)
		repo.stored.Cart().Clear()

		addToCart(t, commands.NewAddToCartCommandHandler(repo, e.guard), id, catalog.GrowlerSessionIPA)

		assert.Nil(t, repo.stored.PendingAddConflict())
		assert.Equal(t, kernel.FozDoIguacu, repo.stored.Cart().PinnedLocation())
	})

	t.Run("nothing_pending", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockSessionRepository)
		s := storedSession(t, repo, kernel.MarechalCandidoRondon)
		repo.On("Modify", ctx, s.ID()).Return(nil)
		cmd, err := commands.NewResolveAddConflictCommand(s.ID(), cart.CancelAdd)
		require.NoError(t, err)

		handler := commands.NewResolveAddConflictCommandHandler(repo, e.guard)
		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})
}

func TestRemoveFromCartAndUpdateQuantityCommandHandlers(t *testing.T) {
	e := newEngine(t)
	ctx := t.Context()
	repo := new(MockSessionRepository)
	s := storedSession(t, repo, kernel.MarechalCandidoRondon)
	repo.On("Modify", ctx, s.ID()).Return(nil)
	addHandler := commands.NewAddToCartCommandHandler(repo, e.guard)
	addToCart(t, addHandler, s.ID(), catalog.GrowlerPilsen)

	update := commands.NewUpdateQuantityCommandHandler(repo)
	remove := commands.NewRemoveFromCartCommandHandler(repo)

	// Given quantity 1, +2 then -10 clamps to 1
	up, err := commands.NewUpdateQuantityCommand(s.ID(), catalog.GrowlerPilsen, 2)
	require.NoError(t, err)
	require.NoError(t, update.Handle(ctx, up))
	item, _ := repo.stored.Cart().Item(catalog.GrowlerPilsen)
	assert.Equal(t, 3, item.Quantity())

	down, err := commands.NewUpdateQuantityCommand(s.ID(), catalog.GrowlerPilsen, -10)
	require.NoError(t, err)
	require.NoError(t, update.Handle(ctx, down))
	item, _ = repo.stored.Cart().Item(catalog.GrowlerPilsen)
	assert.Equal(t, 1, item.Quantity())

	// When the last line is removed the cart is unpinned
	rm, err := commands.NewRemoveFromCartCommand(s.ID(), catalog.GrowlerPilsen)
	require.NoError(t, err)
	require.NoError(t, remove.Handle(ctx, rm))
	assert.True(t, repo.stored.Cart().IsEmpty())
	assert.False(t, repo.stored.Cart().IsPinned())

	// Then removing it again is a not-found error
	err = remove.Handle(ctx, rm)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = commands.NewUpdateQuantityCommand(s.ID(), catalog.GrowlerPilsen, 0)
	require.Error(t, err)
}
