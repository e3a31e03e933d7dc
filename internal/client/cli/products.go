package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/arifsetiawan/womshop/internal/client/models"
)

// List shows the product catalog. The first call triggers the initial
// fetch; later calls re-render the current snapshot without refetching
// (use Refresh for that).
func (a *App) List(ctx context.Context) error {
	a.list.Activate(ctx)
	renderProductList(a.out, a.list.Snapshot())
	return nil
}

// Refresh re-fetches the product list.
func (a *App) Refresh(ctx context.Context) error {
	a.list.Refresh(ctx)
	renderProductList(a.out, a.list.Snapshot())
	return nil
}

// Retry repeats the initial list load after a failure.
func (a *App) Retry(ctx context.Context) error {
	a.list.Retry(ctx)
	renderProductList(a.out, a.list.Snapshot())
	return nil
}

// Show fetches and renders one product. The snapshot from the current list
// doubles as the degraded-display fallback: when the detail fetch fails the
// user still sees the data the list already had, plus the error.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return nil
	}

	a.detail.Load(ctx, id, a.listFallback(id))

	renderProductDetail(a.out, a.detail.Snapshot())
	return nil
}

// listFallback returns the product as last seen in the list, or nil.
func (a *App) listFallback(id int) *models.Product {
	for _, p := range a.list.Snapshot().Items {
		if p.ID == id {
			fallback := p
			return &fallback
		}
	}
	return nil
}
