package reward

// Tier messages shown to the player
const (
	MsgLegendary = "Amazing! You earned a legendary NFT!"
	MsgExcellent = "Excellent! Double token multiplier!"
	MsgGreat     = "Great job! 1.5x token multiplier!"
	MsgGood      = "Good effort! Keep playing to earn more!"
)

// Tier lower bounds, inclusive
const (
	ScoreLegendary int64 = 1000
	ScoreExcellent int64 = 800
	ScoreGreat     int64 = 500
)

// PointsPerToken is the number of score points that earn one base token
const PointsPerToken int64 = 10
