package rpc

import (
	"context"
	"fmt"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/tinoh9/beerus/log"
)

// BEERUS is the namespace of the beerus service
const BEERUS = "beerus"

// BeerusEndpoints contains implementations for the "beerus" RPC endpoints:
// client status and the L1<->L2 messaging queries answered by the L1 core
// contract.
type BeerusEndpoints struct {
	logger      *log.Logger
	meter       metric.Meter
	readTimeout time.Duration
	client      LightClienter
}

// NewBeerusEndpoints returns BeerusEndpoints
func NewBeerusEndpoints(
	logger *log.Logger,
	readTimeout time.Duration,
	client LightClienter,
) *BeerusEndpoints {
	meter := otel.Meter(meterName)
	return &BeerusEndpoints{
		logger:      logger,
		meter:       meter,
		readTimeout: readTimeout,
		client:      client,
	}
}

// SyncStatus returns the lifecycle state of the light client.
func (b *BeerusEndpoints) SyncStatus() (interface{}, rpc.Error) {
	return b.client.SyncStatus().String(), nil
}

// L1ToL2MessageCancellations returns the cancellation timestamp of the L1 to
// L2 message with the given hash, 0 if it was never cancelled.
func (b *BeerusEndpoints) L1ToL2MessageCancellations(msgHash common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := b.readCtx()
	defer cancel()
	b.count(ctx, "l1_to_l2_message_cancellations")

	value, err := b.client.L1ToL2MessageCancellations(ctx, msgHash)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get message cancellation, error: %s", err))
	}
	return value.String(), nil
}

// L1ToL2Messages returns msg_fee+1 of the pending L1 to L2 message with the
// given hash, 0 if there is none.
func (b *BeerusEndpoints) L1ToL2Messages(msgHash common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := b.readCtx()
	defer cancel()
	b.count(ctx, "l1_to_l2_messages")

	value, err := b.client.L1ToL2Messages(ctx, msgHash)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get message fee, error: %s", err))
	}
	return value.String(), nil
}

// L2ToL1Messages returns msg_fee+1 of the pending L2 to L1 message with the
// given hash, 0 if there is none.
func (b *BeerusEndpoints) L2ToL1Messages(msgHash common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := b.readCtx()
	defer cancel()
	b.count(ctx, "l2_to_l1_messages")

	value, err := b.client.L2ToL1Messages(ctx, msgHash)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get message fee, error: %s", err))
	}
	return value.String(), nil
}

// L1ToL2MessageNonce returns the nonce of the L1 to L2 message bridge.
func (b *BeerusEndpoints) L1ToL2MessageNonce() (interface{}, rpc.Error) {
	ctx, cancel := b.readCtx()
	defer cancel()
	b.count(ctx, "l1_to_l2_message_nonce")

	value, err := b.client.L1ToL2MessageNonce(ctx)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get message nonce, error: %s", err))
	}
	return value.String(), nil
}

func (b *BeerusEndpoints) readCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), b.readTimeout)
}

func (b *BeerusEndpoints) count(ctx context.Context, name string) {
	counter, err := b.meter.Int64Counter(name)
	if err != nil {
		b.logger.Warnf("failed to create %s counter: %s", name, err)
		return
	}
	counter.Add(ctx, 1)
}
