package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/logger"
	"github.com/osse101/QuestGate_Go/internal/wallet"
)

// MirrorConfig configures a MirrorClient
type MirrorConfig struct {
	BaseURL          string
	AccessNFTTokenID string
	GameTokenID      string
	Timeout          time.Duration
}

// MirrorClient reads balances from a mirror node REST API. Both EVM addresses
// and native account ids are resolved by the mirror node itself.
type MirrorClient struct {
	baseURL          string
	accessNFTTokenID string
	gameTokenID      string
	httpClient       *http.Client
}

// NewMirrorClient creates a mirror node client. A nil httpClient gets a
// client with cfg.Timeout.
func NewMirrorClient(cfg MirrorConfig, httpClient *http.Client) *MirrorClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultMirrorURL
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &MirrorClient{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		accessNFTTokenID: cfg.AccessNFTTokenID,
		gameTokenID:      cfg.GameTokenID,
		httpClient:       httpClient,
	}
}

type mirrorTokenBalance struct {
	TokenID string `json:"token_id"`
	Balance int64  `json:"balance"`
}

type mirrorAccountResponse struct {
	Account    string `json:"account"`
	EVMAddress string `json:"evm_address"`
	Balance    struct {
		Balance int64                `json:"balance"`
		Tokens  []mirrorTokenBalance `json:"tokens"`
	} `json:"balance"`
}

// Account returns the HBAR and token balances of addr. An account the mirror
// node does not know is returned as an empty state, not an error.
func (c *MirrorClient) Account(ctx context.Context, addr wallet.Address) (state domain.AccountState, err error) {
	start := time.Now()
	ctx, span := startSpan(ctx, OpAccountLookup, attribute.String("ledger.address", addr.String()))
	defer func() { finish(span, OpAccountLookup, start, err) }()

	logger.FromContext(ctx).Debug(LogMsgMirrorLookup, "address", addr.String())

	req, err := newJSONRequest(ctx, http.MethodGet, c.baseURL+mirrorAccountsPath+url.PathEscape(addr.String()), nil)
	if err != nil {
		return domain.AccountState{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.AccountState{}, fmt.Errorf("%w: %w", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		logger.FromContext(ctx).Debug(LogMsgAccountNotFound, "address", addr.String())
		return domain.AccountState{Account: addr.String(), Tokens: map[string]int64{}}, nil
	case resp.StatusCode == http.StatusBadRequest:
		return domain.AccountState{}, fmt.Errorf("%w: %w", domain.ErrInvalidAddress, readStatusError(OpAccountLookup, resp))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		statusErr := readStatusError(OpAccountLookup, resp)
		if statusErr.Temporary() {
			return domain.AccountState{}, fmt.Errorf("%w: %w", domain.ErrLookupFailed, statusErr)
		}
		return domain.AccountState{}, statusErr
	}

	var body mirrorAccountResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.AccountState{}, fmt.Errorf("%w: decode account: %w", domain.ErrLookupFailed, err)
	}

	state = domain.AccountState{
		Account:  body.Account,
		Tinybars: body.Balance.Balance,
		Tokens:   make(map[string]int64, len(body.Balance.Tokens)),
	}
	if state.Account == "" {
		state.Account = addr.String()
	}
	if state.Tinybars < 0 {
		return domain.AccountState{}, fmt.Errorf("mirror node reported negative hbar balance for %s", addr)
	}
	for _, tb := range body.Balance.Tokens {
		if tb.Balance < 0 {
			return domain.AccountState{}, fmt.Errorf("mirror node reported negative balance of %s for %s", tb.TokenID, addr)
		}
		state.Tokens[tb.TokenID] += tb.Balance
	}
	return state, nil
}

// Holdings projects the account state onto the access NFT and game token
func (c *MirrorClient) Holdings(ctx context.Context, addr wallet.Address) (domain.HoldingsSnapshot, error) {
	state, err := c.Account(ctx, addr)
	if err != nil {
		return domain.HoldingsSnapshot{}, err
	}
	return domain.HoldingsSnapshot{
		AccessNFTBalance: state.TokenBalance(c.accessNFTTokenID),
		GameTokenBalance: state.TokenBalance(c.gameTokenID),
	}, nil
}

// Ping checks that the mirror node answers
func (c *MirrorClient) Ping(ctx context.Context) (err error) {
	start := time.Now()
	ctx, span := startSpan(ctx, OpNetworkProbe)
	defer func() { finish(span, OpNetworkProbe, start, err) }()

	req, err := newJSONRequest(ctx, http.MethodGet, c.baseURL+mirrorNetworkPath, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readStatusError(OpNetworkProbe, resp)
	}
	return nil
}
