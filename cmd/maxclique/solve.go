package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/parasols-go/maxclique/cco"
	"github.com/parasols-go/maxclique/colourise"
	"github.com/parasols-go/maxclique/graphio"
	"github.com/parasols-go/maxclique/ordering"
	"github.com/parasols-go/maxclique/runner"
)

func runSolve(cmd *cobra.Command, args []string) error {
	filename := args[0]

	format, _ := cmd.Flags().GetString("format")
	order, _ := cmd.Flags().GetString("order")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	threads, _ := cmd.Flags().GetInt("threads")
	initialBound, _ := cmd.Flags().GetInt("initial-bound")
	stopAfterFinding, _ := cmd.Flags().GetInt("stop-after-finding")
	printIncumbents, _ := cmd.Flags().GetBool("print-incumbents")

	g, err := graphio.Read(graphio.Format(format), filename, graphio.Options{})
	if err != nil {
		return err
	}

	params := runner.DefaultParams()
	params.OrderFunc = ordering.Function(order)
	params.Permutation = colourise.Defer1
	params.Inference = cco.LazyGlobalDomination
	params.Timeout = timeout
	params.NThreads = threads
	params.InitialBound = initialBound
	params.StopAfterFinding = stopAfterFinding
	params.PrintCandidates = printIncumbents
	params.WorkDonation = threads > 1

	result, err := runner.Run(cmd.Context(), g, params)
	if err != nil {
		return err
	}

	fmt.Printf("%d %v\n", result.Size, result.Members)
	if len(result.Times) > 0 {
		fmt.Printf("%d\n", result.Times[0].Round(time.Millisecond).Milliseconds())
	}
	if result.Aborted {
		fmt.Println("aborted")
	}

	return nil
}
