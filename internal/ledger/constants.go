package ledger

import "time"

// Mirror node REST paths
const (
	mirrorAccountsPath = "/api/v1/accounts/"
	mirrorNetworkPath  = "/api/v1/network/supply"
)

// Treasury signer REST paths
const (
	treasuryMintFungiblePath = "/v1/mint/fungible"
	treasuryMintNFTPath      = "/v1/mint/nft"
	treasuryTransferNFTPath  = "/v1/transfer/nft"
)

// HTTP headers
const (
	headerIdempotencyKey = "Idempotency-Key"
	headerAuthorization  = "Authorization"
	headerContentType    = "Content-Type"
	contentTypeJSON      = "application/json"
)

// Idempotency key suffixes appended to the claim id
const (
	idempotencySuffixTokens = "-tokens"
	idempotencySuffixNFT    = "-nft"
)

// Operation names used for metrics and spans
const (
	OpAccountLookup = "mirror.account"
	OpNetworkProbe  = "mirror.network"
	OpMintFungible  = "treasury.mint_fungible"
	OpMintNFT       = "treasury.mint_nft"
	OpTransferNFT   = "treasury.transfer_nft"
)

// Defaults
const (
	DefaultMirrorURL = "https://testnet.mirrornode.hedera.com"
	DefaultTimeout   = 10 * time.Second

	// maxErrorBodyBytes bounds how much of an error response is kept
	maxErrorBodyBytes = 512
)

// rewardNFTMetadataFormat is stored on-chain with each reward NFT
const rewardNFTMetadataFormat = "Reward NFT for score: %d"

const tracerName = "github.com/osse101/QuestGate_Go/internal/ledger"

// Log messages
const (
	LogMsgMirrorLookup     = "Mirror node account lookup"
	LogMsgAccountNotFound  = "Account not found on mirror node, treating as empty"
	LogMsgTreasurySubmit   = "Submitting treasury transaction"
	LogMsgTreasuryAccepted = "Treasury transaction accepted"
	LogMsgDryRunIssue      = "Dry-run reward issuance"
	LogMsgDryRunTransfer   = "Dry-run NFT transfer"
	LogMsgRetrying         = "Transient ledger failure, retrying"
	LogMsgProbeFailed      = "Ledger health probe failed"
)
