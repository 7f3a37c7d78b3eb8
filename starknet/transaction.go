package starknet

import (
	"encoding/json"
	"fmt"
)

// TxType discriminates the StarkNet transaction variants.
type TxType string

const (
	// TxTypeInvoke invoke transaction (v0 or v1)
	TxTypeInvoke TxType = "INVOKE"
	// TxTypeL1Handler transaction triggered by an L1 message
	TxTypeL1Handler TxType = "L1_HANDLER"
	// TxTypeDeclare class declaration transaction
	TxTypeDeclare TxType = "DECLARE"
	// TxTypeDeploy legacy contract deployment transaction
	TxTypeDeploy TxType = "DEPLOY"
	// TxTypeDeployAccount account deployment transaction
	TxTypeDeployAccount TxType = "DEPLOY_ACCOUNT"
)

// Transaction is implemented by every StarkNet transaction variant. Hash is
// the single projection shared by all call sites that need a transaction
// hash, whatever the kind.
type Transaction interface {
	Hash() *Felt
	Type() TxType
}

// InvokeTxnV0 is a legacy invoke transaction addressed by contract and entry
// point.
type InvokeTxnV0 struct {
	TransactionHash    *Felt   `json:"transaction_hash"`
	MaxFee             *Felt   `json:"max_fee"`
	Version            *Felt   `json:"version"`
	Signature          []*Felt `json:"signature"`
	ContractAddress    *Felt   `json:"contract_address"`
	EntryPointSelector *Felt   `json:"entry_point_selector"`
	Calldata           []*Felt `json:"calldata"`
}

// Hash returns the transaction hash.
func (t *InvokeTxnV0) Hash() *Felt { return t.TransactionHash }

// Type returns TxTypeInvoke.
func (t *InvokeTxnV0) Type() TxType { return TxTypeInvoke }

// InvokeTxnV1 is an invoke transaction sent from an account contract.
type InvokeTxnV1 struct {
	TransactionHash *Felt   `json:"transaction_hash"`
	MaxFee          *Felt   `json:"max_fee"`
	Version         *Felt   `json:"version"`
	Signature       []*Felt `json:"signature"`
	Nonce           *Felt   `json:"nonce"`
	SenderAddress   *Felt   `json:"sender_address"`
	Calldata        []*Felt `json:"calldata"`
}

// Hash returns the transaction hash.
func (t *InvokeTxnV1) Hash() *Felt { return t.TransactionHash }

// Type returns TxTypeInvoke.
func (t *InvokeTxnV1) Type() TxType { return TxTypeInvoke }

// L1HandlerTxn executes an L1 to L2 message on the target contract.
type L1HandlerTxn struct {
	TransactionHash    *Felt   `json:"transaction_hash"`
	Version            *Felt   `json:"version"`
	Nonce              *Felt   `json:"nonce"`
	ContractAddress    *Felt   `json:"contract_address"`
	EntryPointSelector *Felt   `json:"entry_point_selector"`
	Calldata           []*Felt `json:"calldata"`
}

// Hash returns the transaction hash.
func (t *L1HandlerTxn) Hash() *Felt { return t.TransactionHash }

// Type returns TxTypeL1Handler.
func (t *L1HandlerTxn) Type() TxType { return TxTypeL1Handler }

// DeclareTxn declares a new contract class.
type DeclareTxn struct {
	TransactionHash *Felt   `json:"transaction_hash"`
	MaxFee          *Felt   `json:"max_fee"`
	Version         *Felt   `json:"version"`
	Signature       []*Felt `json:"signature"`
	Nonce           *Felt   `json:"nonce"`
	ClassHash       *Felt   `json:"class_hash"`
	SenderAddress   *Felt   `json:"sender_address"`
}

// Hash returns the transaction hash.
func (t *DeclareTxn) Hash() *Felt { return t.TransactionHash }

// Type returns TxTypeDeclare.
func (t *DeclareTxn) Type() TxType { return TxTypeDeclare }

// DeployTxn is the legacy deployment transaction, superseded by
// DeployAccountTxn but still present in old blocks.
type DeployTxn struct {
	TransactionHash     *Felt   `json:"transaction_hash"`
	Version             *Felt   `json:"version"`
	ClassHash           *Felt   `json:"class_hash"`
	ContractAddressSalt *Felt   `json:"contract_address_salt"`
	ConstructorCalldata []*Felt `json:"constructor_calldata"`
}

// Hash returns the transaction hash.
func (t *DeployTxn) Hash() *Felt { return t.TransactionHash }

// Type returns TxTypeDeploy.
func (t *DeployTxn) Type() TxType { return TxTypeDeploy }

// DeployAccountTxn deploys an account contract.
type DeployAccountTxn struct {
	TransactionHash     *Felt   `json:"transaction_hash"`
	MaxFee              *Felt   `json:"max_fee"`
	Version             *Felt   `json:"version"`
	Signature           []*Felt `json:"signature"`
	Nonce               *Felt   `json:"nonce"`
	ClassHash           *Felt   `json:"class_hash"`
	ContractAddressSalt *Felt   `json:"contract_address_salt"`
	ConstructorCalldata []*Felt `json:"constructor_calldata"`
}

// Hash returns the transaction hash.
func (t *DeployAccountTxn) Hash() *Felt { return t.TransactionHash }

// Type returns TxTypeDeployAccount.
func (t *DeployAccountTxn) Type() TxType { return TxTypeDeployAccount }

// Transactions is an ordered list of transactions that knows how to decode
// the type-tagged wire form.
type Transactions []Transaction

// UnmarshalJSON decodes a JSON array of type-tagged transactions.
func (txs *Transactions) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	decoded := make(Transactions, 0, len(raws))
	for _, raw := range raws {
		tx, err := UnmarshalTransaction(raw)
		if err != nil {
			return err
		}
		decoded = append(decoded, tx)
	}
	*txs = decoded
	return nil
}

// UnmarshalTransaction decodes a single type-tagged transaction. Invoke
// transactions are further discriminated by their version field.
func UnmarshalTransaction(data []byte) (Transaction, error) {
	var envelope struct {
		Type    TxType `json:"type"`
		Version *Felt  `json:"version"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	var tx Transaction
	switch envelope.Type {
	case TxTypeInvoke:
		if envelope.Version != nil && envelope.Version.IsZero() {
			tx = &InvokeTxnV0{}
		} else {
			tx = &InvokeTxnV1{}
		}
	case TxTypeL1Handler:
		tx = &L1HandlerTxn{}
	case TxTypeDeclare:
		tx = &DeclareTxn{}
	case TxTypeDeploy:
		tx = &DeployTxn{}
	case TxTypeDeployAccount:
		tx = &DeployAccountTxn{}
	default:
		return nil, fmt.Errorf("unknown transaction type %q", envelope.Type)
	}
	if err := json.Unmarshal(data, tx); err != nil {
		return nil, err
	}
	return tx, nil
}
