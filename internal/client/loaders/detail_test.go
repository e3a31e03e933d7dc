package loaders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arifsetiawan/womshop/internal/client/api"
	"github.com/arifsetiawan/womshop/internal/client/models"
)

func TestDetailLoader_LoadSuccess(t *testing.T) {
	full := &models.Product{ID: 7, Title: "Chanel Coco Noir", Price: 129.99, Stock: 41}
	client := &scriptedClient{detail: full}
	l := NewDetailLoader(client, testLogger())

	fallback := &models.Product{ID: 7, Title: "Chanel Coco Noir"}
	l.Load(context.Background(), 7, fallback)

	state := l.Snapshot()
	require.False(t, state.IsLoading)
	require.Empty(t, state.Error)
	require.Equal(t, full, state.Item)
}

func TestDetailLoader_FailureDegradesToFallback(t *testing.T) {
	client := &scriptedClient{detailErr: &api.Error{Kind: api.KindServer, Status: 404, Message: "Product with id '999' not found"}}
	l := NewDetailLoader(client, testLogger())

	fallback := &models.Product{ID: 999, Title: "From navigation"}
	l.Load(context.Background(), 999, fallback)

	state := l.Snapshot()
	require.False(t, state.IsLoading)
	require.Equal(t, "Product with id '999' not found", state.Error)
	require.Equal(t, fallback, state.Item, "failed fetch must fall back to the supplied snapshot")
}

func TestDetailLoader_FailureWithoutFallbackLeavesNilItem(t *testing.T) {
	client := &scriptedClient{detailErr: &api.Error{Kind: api.KindNetwork}}
	l := NewDetailLoader(client, testLogger())

	l.Load(context.Background(), 999, nil)

	state := l.Snapshot()
	require.Nil(t, state.Item)
	require.Equal(t, MsgDetailLoadFailed, state.Error)
}

func TestDetailLoader_ErrorClearedOnNextLoad(t *testing.T) {
	client := &scriptedClient{detailErr: &api.Error{Kind: api.KindNetwork}}
	l := NewDetailLoader(client, testLogger())

	l.Load(context.Background(), 1, nil)
	require.NotEmpty(t, l.Snapshot().Error)

	client.detailErr = nil
	client.detail = &models.Product{ID: 1, Title: "Mascara"}
	l.Load(context.Background(), 1, nil)

	state := l.Snapshot()
	require.Empty(t, state.Error)
	require.Equal(t, "Mascara", state.Item.Title)
}

func TestDetailLoader_StaleResponseDiscarded(t *testing.T) {
	gate := make(chan struct{})
	client := &scriptedClient{detail: &models.Product{ID: 1, Title: "OLD"}, detailGat: gate}
	l := NewDetailLoader(client, testLogger())

	first := make(chan struct{})
	go func() {
		defer close(first)
		l.Load(context.Background(), 1, nil)
	}()

	require.Eventually(t, func() bool {
		return l.Snapshot().IsLoading
	}, time.Second, time.Millisecond)

	// Newer load for another product wins; the first response is stale.
	fresh := &scriptedClient{detail: &models.Product{ID: 2, Title: "NEW"}}
	l.api = fresh
	l.Load(context.Background(), 2, nil)
	require.Equal(t, "NEW", l.Snapshot().Item.Title)

	close(gate)
	<-first

	state := l.Snapshot()
	require.Equal(t, "NEW", state.Item.Title)
	require.False(t, state.IsLoading)
}
