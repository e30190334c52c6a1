// Command rewardcalc prints reward outcomes and gate decisions offline, using
// the same policy code as the API.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/gate"
	"github.com/osse101/QuestGate_Go/internal/reward"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		printUsage(out)
		return errUsage
	}

	switch args[0] {
	case "reward":
		return runReward(args[1:], out)
	case "gate":
		return runGate(args[1:], out)
	case "tiers":
		printTiers(out)
		return nil
	default:
		printUsage(out)
		return errUsage
	}
}

func runReward(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("reward: at least one score is required")
	}

	outcomes := make([]scoredOutcome, 0, len(args))
	for _, a := range args {
		score, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return fmt.Errorf("reward: %q is not an integer score", a)
		}
		outcome, err := reward.Compute(domain.GameResult{Score: score})
		if err != nil {
			return err
		}
		outcomes = append(outcomes, scoredOutcome{Score: score, Outcome: outcome})
	}
	return printOutcomes(out, outcomes)
}

func runGate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("gate", flag.ContinueOnError)
	fs.SetOutput(out)
	nfts := fs.Int64("nft", 0, "Access NFT balance")
	tokens := fs.Int64("tokens", 0, "Game token balance")
	minBalance := fs.Int64("min", gate.DefaultMinGameTokenBalance, "Minimum game token balance")
	if err := fs.Parse(args); err != nil {
		return err
	}

	snapshot := domain.HoldingsSnapshot{AccessNFTBalance: *nfts, GameTokenBalance: *tokens}
	decision, err := gate.Evaluate(snapshot, gate.Config{MinGameTokenBalance: *minBalance})
	if err != nil {
		return err
	}
	printDecision(out, snapshot, *minBalance, decision)
	return nil
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, "Usage: rewardcalc <command> [args...]")
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  reward <score>...                       Show the reward for each score")
	fmt.Fprintln(out, "  gate [-nft N] [-tokens N] [-min N]      Evaluate game access for a holdings snapshot")
	fmt.Fprintln(out, "  tiers                                   Print the reward tier table")
}
