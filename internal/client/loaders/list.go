package loaders

import (
	"context"
	"sync"

	"github.com/arifsetiawan/womshop/internal/client/api"
	"github.com/arifsetiawan/womshop/internal/client/models"
	"github.com/arifsetiawan/womshop/internal/logging"
)

// The list view always shows the first fixed-size page.
const (
	pageLimit = 30
	pageSkip  = 0
)

// MsgProductsLoadFailed is shown when a list fetch fails without a
// server-provided message.
const MsgProductsLoadFailed = "Gagal memuat produk. Periksa koneksi internet Anda."

// ListState is a snapshot of the product list view-model. IsLoading and
// IsRefreshing are never both true; Error is empty unless the last completed
// fetch failed.
type ListState struct {
	Items        []models.Product
	IsLoading    bool
	IsRefreshing bool
	Error        string
}

// ListLoader fetches the product list page and owns its view state.
type ListLoader struct {
	api    api.Client
	logger logging.Logger

	mu         sync.Mutex
	state      ListState
	generation uint64
	activated  bool
}

func NewListLoader(apiClient api.Client, logger logging.Logger) *ListLoader {
	return &ListLoader{api: apiClient, logger: logger}
}

// Activate triggers the initial load exactly once. Later calls are no-ops,
// matching a view-model that starts loading when its screen first mounts.
func (l *ListLoader) Activate(ctx context.Context) {
	l.mu.Lock()
	already := l.activated
	l.activated = true
	l.mu.Unlock()
	if already {
		return
	}
	l.Load(ctx, false)
}

// Refresh re-fetches with the refreshing indicator instead of the full
// loading state.
func (l *ListLoader) Refresh(ctx context.Context) {
	l.Load(ctx, true)
}

// Retry repeats the initial load after a failure.
func (l *ListLoader) Retry(ctx context.Context) {
	l.Load(ctx, false)
}

// Load fetches the page. A call that is overtaken by a newer Load discards
// its own result without touching the state the newer call owns.
func (l *ListLoader) Load(ctx context.Context, refresh bool) {
	l.mu.Lock()
	l.generation++
	gen := l.generation
	l.state.IsLoading = !refresh
	l.state.IsRefreshing = refresh
	l.state.Error = ""
	l.mu.Unlock()

	page, err := l.api.FetchProducts(ctx, pageLimit, pageSkip)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation {
		l.logger.Debug(ctx, "discarding stale product list response", "generation", gen)
		return
	}
	l.state.IsLoading = false
	l.state.IsRefreshing = false

	if err != nil {
		l.state.Error = api.ResolveMessage(err, MsgProductsLoadFailed)
		l.logger.Error(ctx, "error loading products", "error", err)
		return
	}

	items := page.Products
	if items == nil {
		items = []models.Product{}
	}
	l.state.Items = items
	l.logger.Debug(ctx, "products loaded", "count", len(items))
}

// Snapshot returns a copy of the current list state.
func (l *ListLoader) Snapshot() ListState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}
