package common

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WaitSignal returns a context that is cancelled on SIGINT or SIGTERM.
func WaitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalChan
		cancel()
	}()
	return ctx
}
