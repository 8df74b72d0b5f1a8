package branches

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/restaurantapi"
	"github.com/m04kA/SMC-TableBooking/pkg/logger"
)

type fakeClient struct {
	branches []restaurantapi.Branch
	err      error
	calls    int
}

func (f *fakeClient) GetBranches(context.Context) ([]restaurantapi.Branch, error) {
	f.calls++
	return f.branches, f.err
}

type fakeCache struct {
	stored []domain.Branch
	getErr error
	setErr error
	sets   int
}

func (f *fakeCache) Get(context.Context) ([]domain.Branch, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.stored == nil {
		return nil, errors.New("miss")
	}
	return f.stored, nil
}

func (f *fakeCache) Set(_ context.Context, branches []domain.Branch) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.stored = branches
	return nil
}

func TestService_List(t *testing.T) {
	client := &fakeClient{branches: []restaurantapi.Branch{
		{ID: 1, Name: "Siam", OpenTime: "10:00:00", CloseTime: "22:00"},
		{ID: 2, Name: "Thonglor", OpenTime: "late"},
	}}
	cache := &fakeCache{}
	svc := NewService(client, cache, logger.NewNop())

	branches, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, branches, 2)
	assert.Equal(t, "10:00", branches[0].OpenTime.String())
	assert.Equal(t, "22:00", branches[0].CloseTime.String())
	assert.True(t, branches[1].OpenTime.IsZero())
	assert.Equal(t, 1, cache.sets)

	// Второй вызов отдается из кэша
	again, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, branches, again)
	assert.Equal(t, 1, client.calls)
}

func TestService_List_CacheFailuresAreIgnored(t *testing.T) {
	client := &fakeClient{branches: []restaurantapi.Branch{{ID: 1, Name: "Siam"}}}
	cache := &fakeCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	svc := NewService(client, cache, logger.NewNop())

	branches, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, branches, 1)
}

func TestService_List_UpstreamError(t *testing.T) {
	client := &fakeClient{err: restaurantapi.ErrInternal}
	svc := NewService(client, nil, logger.NewNop())

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrUpstream)
}
