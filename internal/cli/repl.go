package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ipmark/ipmark/internal/lookup"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The coordinator satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Lookup(ctx context.Context, text string)
	BookmarkCurrent()
	RefreshBookmarks()
	ShowBookmark(i int)
	BeginEdit(i int)
	SaveEdit(ctx context.Context, i int, text string)
	CancelEdit(i int)
	DeleteBookmark(i int)
	HandleEvent(ctx context.Context, ev lookup.Event)
}

const helpText = `Available commands:
  lookup <ip>       look up an IP address
  bookmark          bookmark the currently displayed IP
  list              list bookmarked IPs
  show <n>          display bookmark n
  edit <n>          edit bookmark n's address
  save <n> <ip>     save the edited address for bookmark n
  cancel <n>        cancel editing bookmark n
  delete <n>        delete bookmark n (asks for confirmation)
  help              show this text
  exit | quit       leave the program`

// runREPL is the UI-owning loop: it reads commands from lines and relays
// background task notifications from events into the executor. It returns on
// EOF, "exit"/"quit", or context cancellation. Completion events arriving
// while the loop waits for input are applied as they come in, so the display
// always catches up with the newest lookup.
func runREPL(ctx context.Context, a execIface, lines <-chan string, events <-chan lookup.Event, prompt func()) {
	for {
		prompt()

		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			a.HandleEvent(ctx, ev)

		case line, ok := <-lines:
			if !ok {
				return
			}
			parts := strings.Fields(line)
			if len(parts) == 0 {
				continue
			}
			cmd, args := parts[0], parts[1:]

			switch cmd {
			case "help":
				printlnFn(helpText)

			case "lookup", "l":
				if len(args) != 1 {
					printlnFn("usage: lookup <ip>")
					continue
				}
				a.Lookup(ctx, args[0])

			case "bookmark", "b":
				a.BookmarkCurrent()

			case "list":
				a.RefreshBookmarks()

			case "show":
				if i, ok := indexArg(args); ok {
					a.ShowBookmark(i)
				}

			case "edit":
				if i, ok := indexArg(args); ok {
					a.BeginEdit(i)
				}

			case "save":
				if len(args) != 2 {
					printlnFn("usage: save <n> <ip>")
					continue
				}
				i, err := strconv.Atoi(args[0])
				if err != nil {
					printlnFn("usage: save <n> <ip>")
					continue
				}
				a.SaveEdit(ctx, i, args[1])

			case "cancel":
				if i, ok := indexArg(args); ok {
					a.CancelEdit(i)
				}

			case "delete", "del":
				if i, ok := indexArg(args); ok {
					a.DeleteBookmark(i)
				}

			case "exit", "quit":
				printlnFn("Bye!")
				return

			default:
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}

func indexArg(args []string) (int, bool) {
	if len(args) != 1 {
		printlnFn("usage: <command> <n>")
		return 0, false
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("not a bookmark number:", args[0])
		return 0, false
	}
	return i, true
}
