package cli

import (
	"bufio"
	"context"
	"os"
)

func (a *App) Root(ctx context.Context) {
	printlnFn("idpctl connected to", a.config.GRPCAddr, "(type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}
