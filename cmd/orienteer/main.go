// Command orienteer computes the best value a team of agents can collect by
// activating reward nodes within a time budget.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
