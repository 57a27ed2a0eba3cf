package main

import (
	"os"

	"github.com/iamasit07/connect4-ai/pkg/logger"
)

func main() {
	defer logger.Sync()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
