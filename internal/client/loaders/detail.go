package loaders

import (
	"context"
	"sync"

	"github.com/arifsetiawan/womshop/internal/client/api"
	"github.com/arifsetiawan/womshop/internal/client/models"
	"github.com/arifsetiawan/womshop/internal/logging"
)

// MsgDetailLoadFailed is shown when a detail fetch fails without a
// server-provided message.
const MsgDetailLoadFailed = "Gagal memuat detail produk."

// DetailState is a snapshot of the product detail view-model. A nil Item
// after loading finishes means not-found, which the consuming view must
// render as such rather than as a loading state.
type DetailState struct {
	Item      *models.Product
	IsLoading bool
	Error     string
}

// DetailLoader fetches a single product. On failure it degrades to the
// caller-supplied fallback snapshot instead of leaving the view empty.
type DetailLoader struct {
	api    api.Client
	logger logging.Logger

	mu         sync.Mutex
	state      DetailState
	generation uint64
}

func NewDetailLoader(apiClient api.Client, logger logging.Logger) *DetailLoader {
	return &DetailLoader{api: apiClient, logger: logger}
}

// Load fetches the product by id. On failure the error message is resolved
// (server message, then error text, then the localized fallback) AND Item is
// set to fallback; showing stale-but-known data beats an empty error screen.
func (l *DetailLoader) Load(ctx context.Context, id int, fallback *models.Product) {
	l.mu.Lock()
	l.generation++
	gen := l.generation
	l.state.IsLoading = true
	l.state.Error = ""
	l.mu.Unlock()

	product, err := l.api.FetchProductByID(ctx, id)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation {
		l.logger.Debug(ctx, "discarding stale product detail response", "generation", gen, "id", id)
		return
	}
	l.state.IsLoading = false

	if err != nil {
		l.state.Error = api.ResolveMessage(err, MsgDetailLoadFailed)
		l.state.Item = fallback
		l.logger.Error(ctx, "error loading product detail", "id", id, "error", err)
		return
	}

	l.state.Item = product
	l.logger.Debug(ctx, "product detail loaded", "id", id)
}

// Snapshot returns a copy of the current detail state.
func (l *DetailLoader) Snapshot() DetailState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}
