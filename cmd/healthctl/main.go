package main

import (
	"os"

	"github.com/zhouzirui/health-assistant/backend/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
