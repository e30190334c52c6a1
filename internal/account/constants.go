package account

// Collection display names
const (
	AccessNFTName        = "Game Access Pass"
	AccessNFTDescription = "Unlocks full game access"
	RewardNFTName        = "Reward NFT"
	RewardNFTDescription = "Earned through gameplay"
)

// Log messages
const (
	LogMsgAccountLookupFailed = "Account lookup failed"
)
