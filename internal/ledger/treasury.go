package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/logger"
)

// TreasuryConfig configures a TreasuryClient
type TreasuryConfig struct {
	BaseURL          string
	Token            string
	GameTokenID      string
	RewardNFTTokenID string
	Timeout          time.Duration
}

// TreasuryClient submits mints and transfers to the treasury signing service,
// which holds the operator key and waits for consensus receipts. Every call
// carries an Idempotency-Key so a retried request is not executed twice.
type TreasuryClient struct {
	baseURL          string
	token            string
	gameTokenID      string
	rewardNFTTokenID string
	httpClient       *http.Client
}

// NewTreasuryClient creates a treasury client. A nil httpClient gets a client
// with cfg.Timeout.
func NewTreasuryClient(cfg TreasuryConfig, httpClient *http.Client) *TreasuryClient {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &TreasuryClient{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		token:            cfg.Token,
		gameTokenID:      cfg.GameTokenID,
		rewardNFTTokenID: cfg.RewardNFTTokenID,
		httpClient:       httpClient,
	}
}

type mintFungibleRequest struct {
	TokenID   string `json:"token_id"`
	Amount    int64  `json:"amount"`
	Recipient string `json:"recipient"`
	Memo      string `json:"memo,omitempty"`
}

type mintNFTRequest struct {
	TokenID   string `json:"token_id"`
	Recipient string `json:"recipient"`
	Metadata  string `json:"metadata"`
}

type transferNFTRequest struct {
	TokenID   string `json:"token_id"`
	Serial    int64  `json:"serial"`
	From      string `json:"from"`
	To        string `json:"to"`
	HbarPrice int64  `json:"hbar_price"`
}

type treasuryResponse struct {
	TransactionID string `json:"transaction_id"`
	Serial        int64  `json:"serial,omitempty"`
	Status        string `json:"status,omitempty"`
}

// Issue mints the fungible reward when TotalTokens > 0 and a reward NFT when
// the outcome is NFT eligible, skipping parts already in req.Done. On failure
// the receipt holds whatever already succeeded; retrying with the same
// ClaimID is safe.
func (c *TreasuryClient) Issue(ctx context.Context, req IssueRequest) (domain.IssuanceReceipt, error) {
	receipt := req.Done
	key := req.ClaimID.String()

	if req.Outcome.TotalTokens > 0 && receipt.TokenTxID == "" {
		var resp treasuryResponse
		err := c.post(ctx, OpMintFungible, treasuryMintFungiblePath, key+idempotencySuffixTokens, mintFungibleRequest{
			TokenID:   c.gameTokenID,
			Amount:    req.Outcome.TotalTokens,
			Recipient: req.To.String(),
			Memo:      key,
		}, &resp)
		if err != nil {
			return receipt, err
		}
		receipt.TokenTxID = resp.TransactionID
	}

	if req.Outcome.NFTEligible && receipt.NFTTxID == "" {
		var resp treasuryResponse
		err := c.post(ctx, OpMintNFT, treasuryMintNFTPath, key+idempotencySuffixNFT, mintNFTRequest{
			TokenID:   c.rewardNFTTokenID,
			Recipient: req.To.String(),
			Metadata:  fmt.Sprintf(rewardNFTMetadataFormat, req.Score),
		}, &resp)
		if err != nil {
			return receipt, err
		}
		receipt.NFTTxID = resp.TransactionID
		receipt.NFTSerial = resp.Serial
	}

	return receipt, nil
}

// TransferNFT moves an NFT serial to the buyer and the HBAR price to the seller
// in a single atomic transfer
func (c *TreasuryClient) TransferNFT(ctx context.Context, req TransferRequest) (string, error) {
	var resp treasuryResponse
	err := c.post(ctx, OpTransferNFT, treasuryTransferNFTPath, req.IdempotencyKey, transferNFTRequest{
		TokenID:   req.TokenID,
		Serial:    req.Serial,
		From:      req.From,
		To:        req.To,
		HbarPrice: req.PriceHbar,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.TransactionID, nil
}

func (c *TreasuryClient) post(ctx context.Context, op, path, idempotencyKey string, body, out interface{}) (err error) {
	start := time.Now()
	ctx, span := startSpan(ctx, op, attribute.String("ledger.idempotency_key", idempotencyKey))
	defer func() { finish(span, op, start, err) }()

	log := logger.FromContext(ctx)
	log.Debug(LogMsgTreasurySubmit, "operation", op, "idempotency_key", idempotencyKey)

	req, err := newJSONRequest(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set(headerIdempotencyKey, idempotencyKey)
	if c.token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if neverSent(err) {
			return fmt.Errorf("%w: %s: %w", domain.ErrIssuanceFailed, op, err)
		}
		return fmt.Errorf("%w: %w: %s: %w", domain.ErrIssuanceFailed, domain.ErrOutcomeUnknown, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := readStatusError(op, resp)
		switch {
		case !statusErr.Temporary():
			return fmt.Errorf("%w: %w", domain.ErrIssuanceRejected, statusErr)
		case statusErr.MayHaveExecuted():
			return fmt.Errorf("%w: %w: %w", domain.ErrIssuanceFailed, domain.ErrOutcomeUnknown, statusErr)
		default:
			return fmt.Errorf("%w: %w", domain.ErrIssuanceFailed, statusErr)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// accepted but unreadable: the transaction may have executed
		return fmt.Errorf("%w: %w: %s: decode response: %w", domain.ErrIssuanceFailed, domain.ErrOutcomeUnknown, op, err)
	}

	log.Info(LogMsgTreasuryAccepted, "operation", op, "idempotency_key", idempotencyKey)
	return nil
}
