package claim

const tracerName = "github.com/osse101/QuestGate_Go/internal/claim"

// Log messages
const (
	LogMsgClaimStarted     = "Claim started"
	LogMsgClaimCompleted   = "Claim completed"
	LogMsgClaimDenied      = "Claim denied by access gate"
	LogMsgIssuanceFailed   = "Reward issuance failed"
	LogMsgClaimNotRecorded = "Reward issued but claim could not be recorded"
	LogMsgPublishFailed    = "Failed to publish claim event"
	LogMsgNothingToIssue   = "Nothing to issue for score"

	LogMsgClaimResumed       = "Resuming partially issued claim"
	LogMsgClaimPartial       = "Claim recorded as partially issued"
	LogMsgPartialNotRecorded = "Partial issuance could not be recorded"
)
