// Command deckcode validates a deck code and puts its canonical form
// on the clipboard, handy when hand-editing codes before pasting them
// into the builder's import dialog.
//
// Usage:
//
//	deckcode [-copy] [file]
//
// With no file the code is read from stdin.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/youruser/pengdeck/internal/deck"
)

func main() {
	copyFlag := flag.Bool("copy", false, "copy the canonical code to the clipboard")
	flag.Parse()

	var raw []byte
	var err error
	if flag.NArg() > 0 {
		raw, err = os.ReadFile(flag.Arg(0))
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "reading deck code:", err)
		os.Exit(1)
	}

	data, err := deck.DecodeCode(string(raw))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	canonical, err := json.Marshal(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "re-encoding deck code:", err)
		os.Exit(1)
	}

	total := 0
	for _, count := range data.Counts {
		total += count
	}
	fmt.Printf("deck %q: %d cards (%d distinct)\n", data.DeckName, total, len(data.Counts))

	if *copyFlag {
		if err := clipboard.WriteAll(string(canonical)); err != nil {
			fmt.Fprintln(os.Stderr, "copying to clipboard:", err)
			os.Exit(1)
		}
		fmt.Println("copied to clipboard")
		return
	}
	fmt.Println(string(canonical))
}
