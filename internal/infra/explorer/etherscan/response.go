package etherscan

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/ethledger/internal/activity"
	"github.com/gabapcia/ethledger/internal/pkg/logger"
	"github.com/gabapcia/ethledger/internal/pkg/validator"
)

const (
	statusOK = "1"

	// noTransactionsFound is what the explorer answers, with status "0",
	// for an address without activity.
	noTransactionsFound = "No transactions found"

	fallbackErrorMessage = "explorer request failed"
)

type (
	// response is the envelope shared by every explorer endpoint. Result is an
	// array of records on success and a string on most failures.
	response struct {
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Result  json.RawMessage `json:"result"`
	}

	// nativeTransferRecord is a txlist entry. Fields not listed here are ignored.
	nativeTransferRecord struct {
		Hash            string `json:"hash" validate:"required,hexadecimal"`
		BlockNumber     string `json:"blockNumber" validate:"required,number"`
		TimeStamp       string `json:"timeStamp" validate:"required,number"`
		From            string `json:"from" validate:"required,eth_addr"`
		To              string `json:"to" validate:"omitempty,eth_addr"`
		ContractAddress string `json:"contractAddress" validate:"omitempty,eth_addr"`
		Value           string `json:"value" validate:"required,number"`
		GasUsed         string `json:"gasUsed" validate:"required,number"`
		GasPrice        string `json:"gasPrice" validate:"required,number"`
		IsError         string `json:"isError" validate:"omitempty,oneof=0 1"`
	}

	// tokenTransferRecord is a tokentx entry. Fields not listed here are ignored.
	tokenTransferRecord struct {
		Hash            string `json:"hash" validate:"required,hexadecimal"`
		BlockNumber     string `json:"blockNumber" validate:"required,number"`
		TimeStamp       string `json:"timeStamp" validate:"required,number"`
		From            string `json:"from" validate:"required,eth_addr"`
		To              string `json:"to" validate:"required,eth_addr"`
		Value           string `json:"value" validate:"required,number"`
		ContractAddress string `json:"contractAddress" validate:"required,eth_addr"`
		TokenName       string `json:"tokenName"`
		TokenSymbol     string `json:"tokenSymbol"`
		TokenDecimal    string `json:"tokenDecimal" validate:"omitempty,number"`
	}
)

// resultText returns Result when it is a JSON string.
func (r response) resultText() string {
	var s string
	if err := json.Unmarshal(r.Result, &s); err != nil {
		return ""
	}

	return s
}

// empty reports the explorer's "no results" answer, which uses an error
// status but is not a failure.
func (r response) empty() bool {
	return r.Status != statusOK && (r.Message == noTransactionsFound || r.resultText() == noTransactionsFound)
}

// Err returns an *APIError for any non-OK status other than the empty answer.
func (r response) Err() error {
	if r.Status == statusOK || r.empty() {
		return nil
	}

	msg := r.resultText()
	if msg == "" {
		msg = r.Message
	}
	if msg == "" {
		msg = fallbackErrorMessage
	}

	return &APIError{Status: r.Status, Message: msg}
}

// records splits Result into raw records. A successful response whose result
// is not an array has no records.
func (r response) records() []json.RawMessage {
	if r.empty() {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(r.Result, &raw); err != nil {
		return nil
	}

	return raw
}

func (r nativeTransferRecord) toActivity() activity.NativeTransfer {
	return activity.NativeTransfer{
		Hash:            r.Hash,
		BlockNumber:     r.BlockNumber,
		Timestamp:       r.TimeStamp,
		From:            r.From,
		To:              r.To,
		ContractAddress: r.ContractAddress,
		Value:           r.Value,
		GasUsed:         r.GasUsed,
		GasPrice:        r.GasPrice,
		IsError:         r.IsError,
	}
}

func (r tokenTransferRecord) toActivity() activity.TokenTransfer {
	return activity.TokenTransfer{
		Hash:            r.Hash,
		BlockNumber:     r.BlockNumber,
		Timestamp:       r.TimeStamp,
		From:            r.From,
		To:              r.To,
		Value:           r.Value,
		ContractAddress: r.ContractAddress,
		TokenName:       r.TokenName,
		TokenSymbol:     r.TokenSymbol,
		TokenDecimal:    r.TokenDecimal,
	}
}

// decodeRecords decodes and validates each record independently. Records that
// fail are logged and skipped so one malformed entry never fails the batch.
func decodeRecords[W any, T any](ctx context.Context, action string, raw []json.RawMessage, convert func(W) T) []T {
	out := make([]T, 0, len(raw))
	for i, msg := range raw {
		var record W
		err := json.Unmarshal(msg, &record)
		if err == nil {
			err = validator.Validate(record)
		}

		if err != nil {
			logger.Warn(ctx, "dropping invalid explorer record", "error", &RecordError{Action: action, Index: i, Err: err})
			continue
		}

		out = append(out, convert(record))
	}

	return out
}
