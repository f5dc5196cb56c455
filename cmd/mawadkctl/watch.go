package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mawadk/dashboard-client/pkg/debounce"
)

// watchLoop rerenders the list as the operator types filter terms. Each
// line of input becomes the new search term; refetches are debounced so
// a burst of edits produces one request, matching the console's
// search-box behavior. An empty line repeats the current term; "q" exits.
func watchLoop(initial string, render func(term string)) error {
	render(initial)
	fmt.Println(`(watch mode: type to refilter, "q" to quit)`)

	d := debounce.New(debounce.DefaultDelay)
	defer d.Stop()

	term := initial
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "q" {
			return nil
		}
		if line != "" {
			term = line
		}
		current := term
		d.Do(func() { render(current) })
	}
	return scanner.Err()
}
