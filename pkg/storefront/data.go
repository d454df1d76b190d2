package storefront

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/polkashop/polka/internal/api"
)

const (
	fetchTimeout        = 15 * time.Second
	recommendationLimit = 20
	searchLimit         = 50
)

// catalogData is everything the storefront needs before it can draw:
// the pickable catalogs, the user's profile, their orders and the
// recommendation feed.
type catalogData struct {
	Brands          []api.Brand
	Styles          []api.Style
	Categories      []api.Category
	Profile         *api.Profile
	Orders          []api.Order
	Recommendations []api.Product
}

// catalogLoadedMsg delivers the startup fetch result.
type catalogLoadedMsg struct {
	Data catalogData
	Err  error
}

// favoritesSavedMsg reports the outcome of a favorites replacement.
type favoritesSavedMsg struct {
	Kind string // "brands" or "styles"
	Err  error
}

// searchResultsMsg delivers product search results.
type searchResultsMsg struct {
	Query    string
	Products []api.Product
	Err      error
}

// broadcastResultMsg reports the outcome of the admin broadcast POST.
type broadcastResultMsg struct {
	Err error
}

// ClearStatusMsg clears the transient status line.
type ClearStatusMsg struct{}

// loadCatalog fetches the catalogs, profile, orders and recommendation
// feed concurrently. The recommendation feed is best-effort: a fresh
// account without favorites gets an empty feed rather than a startup
// failure.
func (m Model) loadCatalog() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		var data catalogData
		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			var err error
			data.Brands, err = client.Brands(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			data.Styles, err = client.Styles(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			data.Categories, err = client.Categories(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			data.Profile, err = client.Profile(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			data.Orders, err = client.Orders(gctx)
			return err
		})
		g.Go(func() error {
			recs, err := client.Recommendations(gctx, recommendationLimit)
			if err == nil {
				data.Recommendations = recs
			}
			return nil
		})

		if err := g.Wait(); err != nil {
			return catalogLoadedMsg{Err: err}
		}
		return catalogLoadedMsg{Data: data}
	}
}

// saveFavoriteBrands issues the full-replacement save for brand
// favorites.
func (m Model) saveFavoriteBrands(ids []int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return favoritesSavedMsg{Kind: "brands", Err: client.ReplaceFavoriteBrands(ctx, ids)}
	}
}

// saveFavoriteStyles issues the full-replacement save for style
// favorites.
func (m Model) saveFavoriteStyles(ids []string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return favoritesSavedMsg{Kind: "styles", Err: client.ReplaceFavoriteStyles(ctx, ids)}
	}
}

// searchProducts runs a server-side product search. The first selected
// category narrows the query server-side; the caller narrows the rest
// locally.
func (m Model) searchProducts(query, category string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		products, err := client.SearchProducts(ctx, api.SearchParams{
			Query:    query,
			Category: category,
			Limit:    searchLimit,
		})
		return searchResultsMsg{Query: query, Products: products, Err: err}
	}
}

// sendBroadcast performs exactly one broadcast POST.
func (m Model) sendBroadcast(message string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return broadcastResultMsg{Err: client.Broadcast(ctx, message)}
	}
}

// clearStatusAfter schedules the status line reset.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
