package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ErrTxNotFound is returned when the node does not know the transaction.
var ErrTxNotFound = errors.New("transaction not found")

// Client is a minimal JSON-RPC client for EVM chains.
type Client struct {
	url    string
	client *http.Client
}

// NewClient creates a JSON-RPC client pointed at url.
func NewClient(url string) *Client {
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Transaction holds a simplified transaction record.
type Transaction struct {
	Hash        string
	From        string
	To          string
	Value       *big.Int
	ValueEther  string
	Gas         uint64
	GasPrice    *big.Int
	Nonce       uint64
	BlockNumber uint64
	Pending     bool
}

// Receipt holds the confirmation outcome of a mined transaction.
type Receipt struct {
	Success     bool
	GasUsed     uint64
	BlockNumber uint64
}

// BlockNumber returns the latest block number.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	raw, err := c.call(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}
	var n hexutil.Uint64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("parsing block number: %w", err)
	}
	return uint64(n), nil
}

// GasPrice returns the current gas price in wei.
func (c *Client) GasPrice(ctx context.Context) (*big.Int, error) {
	raw, err := c.call(ctx, "eth_gasPrice")
	if err != nil {
		return nil, err
	}
	var gp hexutil.Big
	if err := json.Unmarshal(raw, &gp); err != nil {
		return nil, fmt.Errorf("parsing gas price: %w", err)
	}
	return gp.ToInt(), nil
}

// Ping tests the endpoint and returns latency + block number.
func (c *Client) Ping(ctx context.Context) (latency time.Duration, blockNum uint64, err error) {
	start := time.Now()
	blockNum, err = c.BlockNumber(ctx)
	return time.Since(start), blockNum, err
}

// TransactionByHash returns a transaction by hash, or ErrTxNotFound when
// the node resolves it to null.
func (c *Client) TransactionByHash(ctx context.Context, hash string) (*Transaction, error) {
	raw, err := c.call(ctx, "eth_getTransactionByHash", hash)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, fmt.Errorf("%w: %s", ErrTxNotFound, hash)
	}

	var rt rawTx
	if err := json.Unmarshal(raw, &rt); err != nil {
		return nil, fmt.Errorf("parsing transaction: %w", err)
	}
	return rt.toTx(), nil
}

// TransactionReceipt returns the receipt for a mined transaction.
// A pending or unknown transaction yields ErrTxNotFound.
func (c *Client) TransactionReceipt(ctx context.Context, hash string) (*Receipt, error) {
	raw, err := c.call(ctx, "eth_getTransactionReceipt", hash)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, fmt.Errorf("%w: no receipt for %s", ErrTxNotFound, hash)
	}

	var rr rawReceipt
	if err := json.Unmarshal(raw, &rr); err != nil {
		return nil, fmt.Errorf("parsing receipt: %w", err)
	}
	rec := &Receipt{
		Success: rr.Status == 1,
		GasUsed: uint64(rr.GasUsed),
	}
	if rr.BlockNumber != nil {
		rec.BlockNumber = uint64(*rr.BlockNumber)
	}
	return rec, nil
}

// --- JSON-RPC plumbing ---

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *Client) call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	reqBody, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(string(reqBody)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("RPC request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	if rpcResp.Error != nil {
		return nil, fmt.Errorf("RPC error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}
	return rpcResp.Result, nil
}

func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

// --- wire types ---

type rawTx struct {
	Hash        string          `json:"hash"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	Value       *hexutil.Big    `json:"value"`
	Gas         hexutil.Uint64  `json:"gas"`
	GasPrice    *hexutil.Big    `json:"gasPrice"`
	Nonce       hexutil.Uint64  `json:"nonce"`
	BlockNumber *hexutil.Uint64 `json:"blockNumber"` // null while pending
}

func (rt *rawTx) toTx() *Transaction {
	tx := &Transaction{
		Hash:    rt.Hash,
		From:    rt.From,
		To:      rt.To,
		Gas:     uint64(rt.Gas),
		Nonce:   uint64(rt.Nonce),
		Pending: rt.BlockNumber == nil,
	}
	if rt.Value != nil {
		tx.Value = rt.Value.ToInt()
		tx.ValueEther = WeiToEther(tx.Value)
	}
	if rt.GasPrice != nil {
		tx.GasPrice = rt.GasPrice.ToInt()
	}
	if rt.BlockNumber != nil {
		tx.BlockNumber = uint64(*rt.BlockNumber)
	}
	return tx
}

type rawReceipt struct {
	Status      hexutil.Uint64  `json:"status"`
	GasUsed     hexutil.Uint64  `json:"gasUsed"`
	BlockNumber *hexutil.Uint64 `json:"blockNumber"`
}
