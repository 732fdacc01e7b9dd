package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"metruyencv-downloader/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.RootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
