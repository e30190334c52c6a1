package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/reward"
)

var errUsage = errors.New("invalid usage")

type scoredOutcome struct {
	Score   int64
	Outcome domain.RewardOutcome
}

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

func printOutcomes(out io.Writer, outcomes []scoredOutcome) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tBASE\tMULT\tTOTAL\tNFT\tMESSAGE")
	for _, o := range outcomes {
		printer.Fprintf(tw, "%d\t%d\tx%s\t%d\t%s\t%s\n",
			o.Score,
			o.Outcome.BaseTokens,
			o.Outcome.Multiplier.String(),
			o.Outcome.TotalTokens,
			yesNo(o.Outcome.NFTEligible),
			o.Outcome.Message)
	}
	return tw.Flush()
}

func printTiers(out io.Writer) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MIN SCORE\tMULT\tNFT\tMESSAGE")
	for _, tier := range reward.Tiers() {
		printer.Fprintf(tw, "%d\tx%s\t%s\t%s\n",
			tier.MinScore,
			tier.Multiplier.String(),
			yesNo(tier.NFTEligible),
			tier.Message)
	}
	_ = tw.Flush()
}

func printDecision(out io.Writer, snapshot domain.HoldingsSnapshot, minBalance int64, decision domain.GateDecision) {
	verdict := "DENIED"
	if decision.Allowed {
		verdict = "ALLOWED"
	}
	printer.Fprintf(out, "Access NFTs:   %d\n", snapshot.AccessNFTBalance)
	printer.Fprintf(out, "Game tokens:   %d (minimum %d)\n", snapshot.GameTokenBalance, minBalance)
	fmt.Fprintf(out, "Decision:      %s (%s)\n", verdict, describeReason(decision.Reason))
}

// describeReason turns "sufficient-tokens" into "Sufficient Tokens"
func describeReason(r domain.GateReason) string {
	return titler.String(strings.ReplaceAll(string(r), "-", " "))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
