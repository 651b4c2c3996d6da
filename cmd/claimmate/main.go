package main

import "github.com/custodia-labs/claimmate-cli/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
