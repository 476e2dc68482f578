package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahuan-coding/carla-ops-api/internal/invoker"
	"github.com/bahuan-coding/carla-ops-api/internal/model"
)

type fakeDispatcher struct {
	calls  int
	lastID string
	result model.InvocationResult
}

func (f *fakeDispatcher) Invoke(ctx context.Context, d model.Endpoint, values map[string]string) model.InvocationResult {
	f.calls++
	f.lastID = d.ID
	return f.result
}

type fakeAudit struct {
	records []*model.InvocationRecord
	err     error
}

func (f *fakeAudit) PublishInvocation(ctx context.Context, rec *model.InvocationRecord) (uint64, error) {
	f.records = append(f.records, rec)
	return uint64(len(f.records)), f.err
}

func okResult() model.InvocationResult {
	return model.InvocationResult{OK: true, Status: 200, Data: json.RawMessage(`{}`)}
}

func TestInvokeUnknownEndpoint(t *testing.T) {
	svc := NewInvocationService(&fakeDispatcher{}, invoker.NewGate(time.Minute), nil, nil, testLogger(t))

	_, err := svc.Invoke(context.Background(), "accounts.nope", model.InvokeRequest{})
	assert.ErrorIs(t, err, ErrEndpointNotFound)
}

func TestInvokeDispatchesNonSensitive(t *testing.T) {
	disp := &fakeDispatcher{result: okResult()}
	audit := &fakeAudit{}
	svc := NewInvocationService(disp, invoker.NewGate(time.Minute), audit, nil, testLogger(t))

	resp, err := svc.Invoke(context.Background(), "accounts.get", model.InvokeRequest{
		Values: map[string]string{"id": "acc1"},
	})
	require.NoError(t, err)

	assert.False(t, resp.Armed)
	require.NotNil(t, resp.Result)
	assert.True(t, resp.Result.OK)
	assert.Equal(t, 1, disp.calls)

	require.Len(t, audit.records, 1)
	rec := audit.records[0]
	assert.Equal(t, "accounts.get", rec.EndpointID)
	assert.Equal(t, "GET", rec.Method)
	assert.Equal(t, "/admin/accounts/acc1", rec.URL)
	assert.True(t, rec.OK)
	assert.NotEmpty(t, rec.ID)
}

func TestInvokeSensitiveArmsFirst(t *testing.T) {
	disp := &fakeDispatcher{result: okResult()}
	svc := NewInvocationService(disp, invoker.NewGate(time.Minute), &fakeAudit{}, nil, testLogger(t))

	req := model.InvokeRequest{Values: map[string]string{"id": "acc1"}, Confirm: true}

	resp, err := svc.Invoke(context.Background(), "accounts.block", req)
	require.NoError(t, err)
	assert.True(t, resp.Armed)
	assert.Nil(t, resp.Result)
	assert.Zero(t, disp.calls)

	resp, err = svc.Invoke(context.Background(), "accounts.block", req)
	require.NoError(t, err)
	assert.False(t, resp.Armed)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 1, disp.calls)
}

func TestInvokeSensitiveUnconfirmedStaysArmed(t *testing.T) {
	disp := &fakeDispatcher{result: okResult()}
	svc := NewInvocationService(disp, invoker.NewGate(time.Minute), nil, nil, testLogger(t))

	req := model.InvokeRequest{Values: map[string]string{"id": "acc1"}}

	for i := 0; i < 3; i++ {
		resp, err := svc.Invoke(context.Background(), "accounts.block", req)
		require.NoError(t, err)
		assert.True(t, resp.Armed)
	}
	assert.Zero(t, disp.calls)
}

func TestInvokeSensitiveGatesPerEndpoint(t *testing.T) {
	disp := &fakeDispatcher{result: okResult()}
	svc := NewInvocationService(disp, invoker.NewGate(time.Minute), nil, nil, testLogger(t))

	_, err := svc.Invoke(context.Background(), "accounts.block", model.InvokeRequest{
		Values: map[string]string{"id": "acc1"}, Confirm: true,
	})
	require.NoError(t, err)

	// Arming one endpoint must not arm another.
	resp, err := svc.Invoke(context.Background(), "accounts.unblock", model.InvokeRequest{
		Values: map[string]string{"id": "acc1"}, Confirm: true,
	})
	require.NoError(t, err)
	assert.True(t, resp.Armed)
	assert.Zero(t, disp.calls)
}

func TestInvokeAuditFailureDoesNotFailInvocation(t *testing.T) {
	disp := &fakeDispatcher{result: okResult()}
	audit := &fakeAudit{err: errors.New("stream unavailable")}
	svc := NewInvocationService(disp, invoker.NewGate(time.Minute), audit, nil, testLogger(t))

	resp, err := svc.Invoke(context.Background(), "accounts.get", model.InvokeRequest{
		Values: map[string]string{"id": "acc1"},
	})
	require.NoError(t, err)
	assert.True(t, resp.Result.OK)
}

func TestInvokeRejectsOversizedFieldValue(t *testing.T) {
	disp := &fakeDispatcher{result: okResult()}
	svc := NewInvocationService(disp, invoker.NewGate(time.Minute), nil, nil, testLogger(t))

	huge := make([]byte, 20000)
	for i := range huge {
		huge[i] = 'a'
	}
	_, err := svc.Invoke(context.Background(), "accounts.get", model.InvokeRequest{
		Values: map[string]string{"id": string(huge)},
	})
	assert.Error(t, err)
	assert.Zero(t, disp.calls)
}

func TestInvokeInvalidatesConversationCacheOnMutation(t *testing.T) {
	src := &fakeSource{records: []model.RawConversation{liveRecord("conv_alpha", "Maria")}}
	convSvc := newCachedConversationService(t, src)
	convSvc.List(context.Background())
	require.Equal(t, 1, src.calls)

	disp := &fakeDispatcher{result: okResult()}
	svc := NewInvocationService(disp, invoker.NewGate(time.Minute), nil, convSvc, testLogger(t))

	_, err := svc.Invoke(context.Background(), "accounts.update", model.InvokeRequest{
		Values: map[string]string{"id": "acc1", "name": "Maria S"},
	})
	require.NoError(t, err)

	convSvc.List(context.Background())
	assert.Equal(t, 2, src.calls)
}

func TestInvokeGetDoesNotInvalidateCache(t *testing.T) {
	src := &fakeSource{records: []model.RawConversation{liveRecord("conv_alpha", "Maria")}}
	convSvc := newCachedConversationService(t, src)
	convSvc.List(context.Background())

	disp := &fakeDispatcher{result: okResult()}
	svc := NewInvocationService(disp, invoker.NewGate(time.Minute), nil, convSvc, testLogger(t))

	_, err := svc.Invoke(context.Background(), "accounts.get", model.InvokeRequest{
		Values: map[string]string{"id": "acc1"},
	})
	require.NoError(t, err)

	convSvc.List(context.Background())
	assert.Equal(t, 1, src.calls)
}

func TestInvokeFailedMutationKeepsCache(t *testing.T) {
	src := &fakeSource{records: []model.RawConversation{liveRecord("conv_alpha", "Maria")}}
	convSvc := newCachedConversationService(t, src)
	convSvc.List(context.Background())

	disp := &fakeDispatcher{result: model.InvocationResult{Status: 422, Message: "upstream returned 422"}}
	svc := NewInvocationService(disp, invoker.NewGate(time.Minute), nil, convSvc, testLogger(t))

	_, err := svc.Invoke(context.Background(), "accounts.update", model.InvokeRequest{
		Values: map[string]string{"id": "acc1"},
	})
	require.NoError(t, err)

	convSvc.List(context.Background())
	assert.Equal(t, 1, src.calls)
}
