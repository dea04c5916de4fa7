package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	Register(ctx context.Context) error
	Grant(ctx context.Context, userID string) error
	Revoke(ctx context.Context, userID string) error
	Claims(ctx context.Context, subjectID string) error
	Active(ctx context.Context, subjectID string) error
	Health(ctx context.Context) error
}

const helpText = "Available commands: register, grant <user-id>, revoke <user-id>, claims <subject-id>, active <subject-id>, health, exit"

// runREPL reads commands line by line and dispatches them to a until EOF,
// "exit" or "quit". Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("idpctl> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "register":
			err = a.Register(ctx)

		case "grant", "revoke", "claims", "active":
			if len(args) != 1 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			switch cmd {
			case "grant":
				err = a.Grant(ctx, args[0])
			case "revoke":
				err = a.Revoke(ctx, args[0])
			case "claims":
				err = a.Claims(ctx, args[0])
			case "active":
				err = a.Active(ctx, args[0])
			}

		case "health":
			err = a.Health(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
