package starknet

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockIDJSON(t *testing.T) {
	tag := BlockIDFromTag(BlockTagLatest)
	data, err := json.Marshal(tag)
	require.NoError(t, err)
	require.JSONEq(t, `"latest"`, string(data))

	number := BlockIDFromNumber(42)
	data, err = json.Marshal(number)
	require.NoError(t, err)
	require.JSONEq(t, `{"block_number": 42}`, string(data))

	hash := BlockIDFromHash(MustHexToFelt("0xdeadbeef"))
	data, err = json.Marshal(hash)
	require.NoError(t, err)
	require.JSONEq(t, `{"block_hash": "0xdeadbeef"}`, string(data))

	_, err = json.Marshal(BlockID{})
	require.Error(t, err)
}

func TestBlockIDUnmarshal(t *testing.T) {
	var id BlockID
	require.NoError(t, json.Unmarshal([]byte(`"pending"`), &id))
	require.Equal(t, BlockTagPending, id.Tag)

	id = BlockID{}
	require.NoError(t, json.Unmarshal([]byte(`{"block_number": 7}`), &id))
	require.NotNil(t, id.Number)
	require.Equal(t, uint64(7), *id.Number)

	id = BlockID{}
	require.NoError(t, json.Unmarshal([]byte(`{"block_hash": "0x1f"}`), &id))
	require.NotNil(t, id.Hash)
	require.Equal(t, uint64(0x1f), id.Hash.Uint64())

	require.ErrorIs(t, json.Unmarshal([]byte(`"finalized"`), &id), ErrInvalidBlockID)
	require.ErrorIs(t, json.Unmarshal([]byte(`{}`), &id), ErrInvalidBlockID)
}

func TestBlockWithTxHashesProjection(t *testing.T) {
	block := &BlockWithTxs{
		BlockHeader: BlockHeader{
			BlockHash:   MustHexToFelt("0xabc"),
			BlockNumber: 9,
			NewRoot:     MustHexToFelt("0xdef"),
		},
		Status: BlockStatusAcceptedOnL1,
		Transactions: Transactions{
			&InvokeTxnV1{TransactionHash: MustHexToFelt("0x10")},
			&DeployAccountTxn{TransactionHash: MustHexToFelt("0x20")},
		},
	}

	projected := block.WithTxHashes()
	require.Equal(t, block.BlockHeader, projected.BlockHeader)
	require.Equal(t, BlockStatusAcceptedOnL1, projected.Status)
	require.Len(t, projected.Transactions, 2)
	require.Equal(t, uint64(0x10), projected.Transactions[0].Uint64())
	require.Equal(t, uint64(0x20), projected.Transactions[1].Uint64())
}

func TestBlockPending(t *testing.T) {
	require.True(t, (&BlockWithTxs{Status: BlockStatusPending}).Pending())
	require.False(t, (&BlockWithTxs{Status: BlockStatusAcceptedOnL2}).Pending())
}
