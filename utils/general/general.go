package generalutils

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
)

type GeneralUtilsInterface interface {
	HandleSignals() context.Context
	IsInteractive() bool
}

type DefaultGeneralUtilsManager struct {
	Stdin *os.File
}

// HandleSignals returns a context cancelled on the first SIGINT or SIGTERM.
func (g *DefaultGeneralUtilsManager) HandleSignals() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Warn().Str("signal", sig.String()).Msg("received termination signal, cancelling")
		signal.Stop(sigChan)
		cancel()
	}()

	return ctx
}

// IsInteractive reports whether stdin is a terminal a prompt can read from.
func (g *DefaultGeneralUtilsManager) IsInteractive() bool {
	in := g.Stdin
	if in == nil {
		in = os.Stdin
	}
	fd := in.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func NewGeneralUtilsManager() GeneralUtilsInterface {
	return &DefaultGeneralUtilsManager{}
}
