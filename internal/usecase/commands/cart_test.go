//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/cart"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/tests/common/builder"
	commandsmock "storefront/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const sessionID = "session-1"

type CartCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	store    *commandsmock.MockCartStore
	products *commandsmock.MockProductReader
	clock    *clock.MockClock
	cmds     commands.CartCommands
}

func (s *CartCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.store = commandsmock.NewMockCartStore(s.ctrl)
	s.products = commandsmock.NewMockProductReader(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC))
	s.cmds = commands.NewCartCommands(s.store, s.products, s.clock)
}

func (s *CartCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCartCommandsSuite(t *testing.T) {
	suite.Run(t, new(CartCommandsTestSuite))
}

// bumpVersion mimics a successful compare-and-swap write.
func bumpVersion(_ context.Context, c *cart.Cart) (*cart.Cart, error) {
	return cart.Reconstruct(c.SessionID(), c.Lines(), c.Version()+1, c.CreatedAt(), c.UpdatedAt()), nil
}

func notFound() error {
	return infra.WrapRepoErr("cart not found", nil, infra.KindNotFound)
}

func conflict() error {
	return infra.WrapRepoErr("cart version moved", nil, infra.KindConflict)
}

func snapshotOf(b *builder.LineBuilder) *commands.ProductSnapshot {
	return &commands.ProductSnapshot{ID: b.ProductID, Name: b.Name, Price: b.Price, Image: b.Image, InStock: true}
}

func (s *CartCommandsTestSuite) TestAdd() {
	s.Run("success: creates the cart on first add", func() {
		line := builder.NewLineBuilder().WithQuantity(2)
		s.products.EXPECT().Snapshot(s.ctx, line.ProductID).Return(snapshotOf(line), nil)
		s.store.EXPECT().Load(s.ctx, sessionID).Return(nil, notFound())
		s.store.EXPECT().Save(s.ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, c *cart.Cart) (*cart.Cart, error) {
			s.Equal(int64(0), c.Version())
			return bumpVersion(ctx, c)
		})

		got, err := s.cmds.Add(s.ctx, sessionID, line.BuildAddRequestDTO())

		s.Require().NoError(err)
		s.Equal(2, got.ItemCount())
		s.Equal(int64(1), got.Version())
	})

	s.Run("success: merges quantities of the same variant", func() {
		line := builder.NewLineBuilder().WithQuantity(3)
		existing := builder.NewCart(sessionID, 4, line.MustBuild())
		s.products.EXPECT().Snapshot(s.ctx, line.ProductID).Return(snapshotOf(line), nil)
		s.store.EXPECT().Load(s.ctx, sessionID).Return(existing, nil)
		s.store.EXPECT().Save(s.ctx, gomock.Any()).DoAndReturn(bumpVersion)

		got, err := s.cmds.Add(s.ctx, sessionID, line.BuildAddRequestDTO())

		s.Require().NoError(err)
		s.Len(got.Lines(), 1)
		s.Equal(6, got.ItemCount())
	})

	s.Run("success: catalog snapshot wins over client values", func() {
		line := builder.NewLineBuilder()
		req := line.BuildAddRequestDTO()
		req.Name = "tampered"
		s.products.EXPECT().Snapshot(s.ctx, line.ProductID).Return(snapshotOf(line), nil)
		s.store.EXPECT().Load(s.ctx, sessionID).Return(nil, notFound())
		s.store.EXPECT().Save(s.ctx, gomock.Any()).DoAndReturn(bumpVersion)

		got, err := s.cmds.Add(s.ctx, sessionID, req)

		s.Require().NoError(err)
		s.Equal(line.Name, got.Lines()[0].Name())
	})

	s.Run("success: retries after a lost write race", func() {
		line := builder.NewLineBuilder()
		other := builder.NewLineBuilder().WithSize("P")
		s.products.EXPECT().Snapshot(s.ctx, line.ProductID).Return(snapshotOf(line), nil)
		gomock.InOrder(
			s.store.EXPECT().Load(s.ctx, sessionID).Return(builder.NewCart(sessionID, 1), nil),
			s.store.EXPECT().Save(s.ctx, gomock.Any()).Return(nil, conflict()),
			s.store.EXPECT().Load(s.ctx, sessionID).Return(builder.NewCart(sessionID, 2, other.MustBuild()), nil),
			s.store.EXPECT().Save(s.ctx, gomock.Any()).DoAndReturn(bumpVersion),
		)

		got, err := s.cmds.Add(s.ctx, sessionID, line.BuildAddRequestDTO())

		s.Require().NoError(err)
		s.Len(got.Lines(), 2, "the concurrent writer's line survives")
		s.Equal(int64(3), got.Version())
	})

	s.Run("error: gives up after repeated conflicts", func() {
		line := builder.NewLineBuilder()
		s.products.EXPECT().Snapshot(s.ctx, line.ProductID).Return(snapshotOf(line), nil)
		s.store.EXPECT().Load(s.ctx, sessionID).Return(builder.NewCart(sessionID, 1), nil).Times(5)
		s.store.EXPECT().Save(s.ctx, gomock.Any()).Return(nil, conflict()).Times(5)

		_, err := s.cmds.Add(s.ctx, sessionID, line.BuildAddRequestDTO())

		s.ErrorIs(err, commands.ErrCartContended)
		s.Zero(errs.KindOf(err), "exhaustion is a server error")
	})

	s.Run("error: validation fails before any I/O", func() {
		cases := []struct {
			name   string
			mutate func(*reqdto.AddCartItemRequest)
			want   error
		}{
			{name: "missing productId", mutate: func(r *reqdto.AddCartItemRequest) { r.ProductID = "" }, want: errs.ErrProductRequired},
			{name: "missing name", mutate: func(r *reqdto.AddCartItemRequest) { r.Name = "  " }, want: errs.ErrProductRequired},
			{name: "missing price", mutate: func(r *reqdto.AddCartItemRequest) { r.Price = nil }, want: errs.ErrProductRequired},
			{name: "zero quantity", mutate: func(r *reqdto.AddCartItemRequest) { q := 0; r.Quantity = &q }, want: errs.ErrInvalidQuantity},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				req := builder.NewLineBuilder().BuildAddRequestDTO()
				tc.mutate(&req)

				_, err := s.cmds.Add(s.ctx, sessionID, req)

				s.ErrorIs(err, tc.want)
				s.Equal(errs.KindValidation, errs.KindOf(err))
			})
		}
	})

	s.Run("error: unknown product", func() {
		line := builder.NewLineBuilder()
		s.products.EXPECT().Snapshot(s.ctx, line.ProductID).
			Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound))

		_, err := s.cmds.Add(s.ctx, sessionID, line.BuildAddRequestDTO())

		s.ErrorIs(err, errs.ErrProductNotFound)
	})

	s.Run("error: out of stock product", func() {
		line := builder.NewLineBuilder()
		snap := snapshotOf(line)
		snap.InStock = false
		s.products.EXPECT().Snapshot(s.ctx, line.ProductID).Return(snap, nil)

		_, err := s.cmds.Add(s.ctx, sessionID, line.BuildAddRequestDTO())

		s.ErrorIs(err, errs.ErrProductOutOfStock)
	})

	s.Run("error: catalog failure is a server error", func() {
		line := builder.NewLineBuilder()
		s.products.EXPECT().Snapshot(s.ctx, line.ProductID).Return(nil, errors.New("redis down"))

		_, err := s.cmds.Add(s.ctx, sessionID, line.BuildAddRequestDTO())

		s.True(errs.Is(err, commands.ErrCatalogReadFailed))
		s.Zero(errs.KindOf(err))
	})
}

func (s *CartCommandsTestSuite) TestSetQuantity() {
	line := builder.NewLineBuilder().WithQuantity(2)

	request := func(q int) reqdto.UpdateCartItemRequest {
		return reqdto.UpdateCartItemRequest{ProductID: line.ProductID, Size: line.Size, Color: line.Color, Quantity: &q}
	}

	s.Run("success: overwrites the quantity", func() {
		s.store.EXPECT().Load(s.ctx, sessionID).Return(builder.NewCart(sessionID, 1, line.MustBuild()), nil)
		s.store.EXPECT().Save(s.ctx, gomock.Any()).DoAndReturn(bumpVersion)

		got, err := s.cmds.SetQuantity(s.ctx, sessionID, request(5))

		s.Require().NoError(err)
		s.Equal(5, got.ItemCount())
	})

	for _, q := range []int{0, -1} {
		s.Run("success: non-positive quantity removes the line", func() {
			s.store.EXPECT().Load(s.ctx, sessionID).Return(builder.NewCart(sessionID, 1, line.MustBuild()), nil)
			s.store.EXPECT().Save(s.ctx, gomock.Any()).DoAndReturn(bumpVersion)

			got, err := s.cmds.SetQuantity(s.ctx, sessionID, request(q))

			s.Require().NoError(err)
			s.True(got.IsEmpty())
			s.Zero(got.ItemCount())
		})
	}

	s.Run("error: missing cart", func() {
		s.store.EXPECT().Load(s.ctx, sessionID).Return(nil, notFound())

		_, err := s.cmds.SetQuantity(s.ctx, sessionID, request(1))

		s.ErrorIs(err, errs.ErrCartNotFound)
		s.Equal(errs.KindNotFound, errs.KindOf(err))
	})

	s.Run("error: missing variant line", func() {
		other := builder.NewLineBuilder().WithColor("Preto")
		s.store.EXPECT().Load(s.ctx, sessionID).Return(builder.NewCart(sessionID, 1, other.MustBuild()), nil)

		_, err := s.cmds.SetQuantity(s.ctx, sessionID, request(1))

		s.ErrorIs(err, errs.ErrLineNotFound)
	})

	s.Run("error: storage failure while saving", func() {
		s.store.EXPECT().Load(s.ctx, sessionID).Return(builder.NewCart(sessionID, 1, line.MustBuild()), nil)
		s.store.EXPECT().Save(s.ctx, gomock.Any()).Return(nil, infra.WrapRepoErr("write failed", errors.New("boom")))

		_, err := s.cmds.SetQuantity(s.ctx, sessionID, request(3))

		s.True(errs.Is(err, commands.ErrCartSaveFailed))
	})
}

func (s *CartCommandsTestSuite) TestRemove() {
	line := builder.NewLineBuilder()
	req := reqdto.RemoveCartItemRequest{ProductID: line.ProductID, Size: line.Size, Color: line.Color}

	s.Run("success: removes the matching variant", func() {
		keep := builder.NewLineBuilder().WithSize("G")
		s.store.EXPECT().Load(s.ctx, sessionID).Return(builder.NewCart(sessionID, 1, line.MustBuild(), keep.MustBuild()), nil)
		s.store.EXPECT().Save(s.ctx, gomock.Any()).DoAndReturn(bumpVersion)

		got, err := s.cmds.Remove(s.ctx, sessionID, req)

		s.Require().NoError(err)
		s.Len(got.Lines(), 1)
		_, found := got.Find(keep.Key())
		s.True(found)
	})

	s.Run("success: absent variant leaves the cart untouched without a write", func() {
		other := builder.NewLineBuilder()
		existing := builder.NewCart(sessionID, 7, other.MustBuild())
		s.store.EXPECT().Load(s.ctx, sessionID).Return(existing, nil)

		got, err := s.cmds.Remove(s.ctx, sessionID, req)

		s.Require().NoError(err)
		s.Equal(existing, got)
	})

	s.Run("success: missing cart yields the empty shape", func() {
		s.store.EXPECT().Load(s.ctx, sessionID).Return(nil, notFound())

		got, err := s.cmds.Remove(s.ctx, sessionID, req)

		s.Require().NoError(err)
		s.Equal(sessionID, got.SessionID())
		s.True(got.IsEmpty())
	})
}

func (s *CartCommandsTestSuite) TestSettle() {
	ordered := builder.NewLineBuilder().WithQuantity(2)

	s.Run("success: drains an unchanged cart", func() {
		placed := builder.NewCart(sessionID, 3, ordered.MustBuild())
		s.store.EXPECT().Load(s.ctx, sessionID).Return(builder.NewCart(sessionID, 3, ordered.MustBuild()), nil)
		s.store.EXPECT().Save(s.ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, c *cart.Cart) (*cart.Cart, error) {
			s.True(c.IsEmpty())
			return bumpVersion(ctx, c)
		})

		s.NoError(s.cmds.Settle(s.ctx, sessionID, placed))
	})

	s.Run("success: keeps lines added after the order snapshot", func() {
		placed := builder.NewCart(sessionID, 3, ordered.MustBuild())
		later := builder.NewLineBuilder().WithSize("GG")
		grown := builder.NewCart(sessionID, 4,
			builder.NewLineBuilder().WithProductID(ordered.ProductID).WithQuantity(3).MustBuild(),
			later.MustBuild(),
		)
		s.store.EXPECT().Load(s.ctx, sessionID).Return(grown, nil)
		s.store.EXPECT().Save(s.ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, c *cart.Cart) (*cart.Cart, error) {
			remaining, ok := c.Find(ordered.Key())
			s.True(ok)
			s.Equal(1, remaining.Quantity())
			_, ok = c.Find(later.Key())
			s.True(ok)
			return bumpVersion(ctx, c)
		})

		s.NoError(s.cmds.Settle(s.ctx, sessionID, placed))
	})

	s.Run("success: already drained cart needs no write", func() {
		placed := builder.NewCart(sessionID, 3, ordered.MustBuild())
		s.store.EXPECT().Load(s.ctx, sessionID).Return(builder.NewCart(sessionID, 3), nil)

		s.NoError(s.cmds.Settle(s.ctx, sessionID, placed))
	})

	s.Run("success: expired cart is a no-op", func() {
		placed := builder.NewCart(sessionID, 3, ordered.MustBuild())
		s.store.EXPECT().Load(s.ctx, sessionID).Return(nil, notFound())

		s.NoError(s.cmds.Settle(s.ctx, sessionID, placed))
	})
}

func TestCartCommands_TouchesUpdatedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := commandsmock.NewMockCartStore(ctrl)
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	cmds := commands.NewCartCommands(store, commandsmock.NewMockProductReader(ctrl), clk)

	line := builder.NewLineBuilder()
	q := 4
	store.EXPECT().Load(gomock.Any(), sessionID).Return(builder.NewCart(sessionID, 1, line.MustBuild()), nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, c *cart.Cart) (*cart.Cart, error) {
		assert.Equal(t, clk.Now(), c.UpdatedAt())
		return bumpVersion(ctx, c)
	})

	_, err := cmds.SetQuantity(context.Background(), sessionID, reqdto.UpdateCartItemRequest{
		ProductID: line.ProductID, Size: line.Size, Color: line.Color, Quantity: &q,
	})
	require.NoError(t, err)
}
