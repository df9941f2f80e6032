package main

import (
	"github.com/leagueops/leaguekeeper/internal/cli"
)

func main() {
	cli.Execute()
}
