package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/ipmark/ipmark/internal/ipinfo"
)

const notAvailable = "N/A"

// ConsoleUI renders the coordinator's UI surface onto a terminal. Confirm
// reads its answer from the same line channel the REPL reads commands from,
// so user input stays strictly sequential.
type ConsoleUI struct {
	out   io.Writer
	lines <-chan string
}

func NewConsoleUI(out io.Writer, lines <-chan string) *ConsoleUI {
	return &ConsoleUI{out: out, lines: lines}
}

func na(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func (u *ConsoleUI) RenderInfo(rec *ipinfo.Record) {
	if rec == nil {
		return
	}
	fmt.Fprintf(u.out, "IP Address:   %s\n", na(rec.IP))
	fmt.Fprintf(u.out, "Hostname:     %s\n", na(rec.Hostname))
	fmt.Fprintf(u.out, "City:         %s\n", na(rec.City))
	fmt.Fprintf(u.out, "Region:       %s\n", na(rec.Region))
	fmt.Fprintf(u.out, "Country:      %s\n", na(rec.Country))
	fmt.Fprintf(u.out, "Organization: %s\n", na(rec.Org))
}

func (u *ConsoleUI) RenderMap(pos *ipinfo.Coordinates) {
	if pos == nil {
		fmt.Fprintln(u.out, "Map will be displayed here.")
		return
	}
	fmt.Fprintf(u.out, "Map:          https://www.openstreetmap.org/?mlat=%v&mlon=%v#map=11/%v/%v\n",
		pos.Lat, pos.Lon, pos.Lat, pos.Lon)
}

func (u *ConsoleUI) RenderBookmarks(list []ipinfo.Record, editing int) {
	fmt.Fprintln(u.out, "Bookmarked IPs:")
	if len(list) == 0 {
		fmt.Fprintln(u.out, "  No bookmarks yet.")
		return
	}
	for i, rec := range list {
		city := rec.City
		if city == "" {
			city = "Unknown"
		}
		marker := ""
		if i == editing {
			marker = "  (editing)"
		}
		fmt.Fprintf(u.out, "  [%d] %s (%s)%s\n", i, rec.IP, city, marker)
	}
}

func (u *ConsoleUI) SetStatus(text string) {
	fmt.Fprintf(u.out, "-- %s\n", text)
}

func (u *ConsoleUI) Confirm(question string) bool {
	fmt.Fprintf(u.out, "%s [y/N] ", question)
	answer, ok := <-u.lines
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (u *ConsoleUI) Warn(text string) {
	fmt.Fprintf(u.out, "warning: %s\n", text)
}

func (u *ConsoleUI) Error(text string) {
	fmt.Fprintf(u.out, "error: %s\n", text)
}
