package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hbollon/go-edlib"
	"golang.org/x/sync/errgroup"

	"github.com/tidycli/tidy/internal/config"
)

// menuActions are the word aliases the prompt accepts alongside 1-4.
var menuActions = []string{"sort", "undo", "dir", "exit"}

// runMenu drives the interactive loop: sort, undo, change directory, exit.
func runMenu(ctx context.Context) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Detached reader: a blocked Scan cannot be interrupted, so it is not
	// part of the group. It dies with the process.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- strings.TrimSpace(scanner.Text())
		}
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return menuLoop(ctx, a, lines)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func menuLoop(ctx context.Context, a *app, lines <-chan string) error {
	dir, err := ensureWorkdir(ctx, lines)
	if err != nil || dir == "" {
		return err
	}

	for {
		showMenu(dir)

		var choice string
		select {
		case <-ctx.Done():
			fmt.Println()
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			choice = line
		}

		switch normalizeChoice(choice) {
		case "sort":
			fmt.Println("\nOrganizing...")
			if err := a.sortDir(dir, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "sort failed: %v\n", err)
			}
		case "undo":
			fmt.Println()
			if err := a.undoDir(dir, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "undo failed: %v\n", err)
			}
		case "dir":
			newDir, err := promptWorkdir(ctx, lines)
			if err != nil {
				return err
			}
			if newDir != "" {
				dir = newDir
			}
		case "exit":
			fmt.Println("Bye!")
			return nil
		default:
			if s := suggestAction(choice); s != "" {
				fmt.Printf("Unknown choice %q. Did you mean %q?\n", choice, s)
			} else {
				fmt.Println("Invalid choice: type 1, 2, 3 or 4")
			}
		}
	}
}

func showMenu(dir string) {
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("   TIDY - Current folder:")
	fmt.Printf("   %s\n", dir)
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("1 - Sort this folder")
	fmt.Println("2 - Undo last sort")
	fmt.Println("3 - Change folder")
	fmt.Println("4 - Exit")
	fmt.Print("Choose (1-4): ")
}

// normalizeChoice maps menu numbers and word aliases onto an action name.
// Unrecognized input maps to "".
func normalizeChoice(choice string) string {
	switch strings.ToLower(choice) {
	case "1", "sort", "organize":
		return "sort"
	case "2", "undo":
		return "undo"
	case "3", "dir", "folder":
		return "dir"
	case "4", "exit", "quit", "q":
		return "exit"
	default:
		return ""
	}
}

// suggestAction finds the closest menu action to a mistyped word.
// Returns "" when nothing is close enough.
func suggestAction(input string) string {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return ""
	}

	best := ""
	var bestScore float32
	for _, action := range menuActions {
		if score := edlib.JaroWinklerSimilarity(in, action); score > bestScore {
			bestScore, best = score, action
		}
	}
	if bestScore < 0.8 {
		return ""
	}
	return best
}

// ensureWorkdir loads the persisted working directory, prompting for a new
// one when none is usable. Returns "" when input ended before a directory
// was chosen.
func ensureWorkdir(ctx context.Context, lines <-chan string) (string, error) {
	dir, err := config.LoadWorkdir()
	if err == nil {
		return dir, nil
	}
	if errors.Is(err, config.ErrWorkdirInvalid) {
		fmt.Println("The saved folder does not exist anymore. Choose a new one.")
	}
	return promptWorkdir(ctx, lines)
}

// promptWorkdir asks for a folder path until a valid one is saved.
func promptWorkdir(ctx context.Context, lines <-chan string) (string, error) {
	for {
		fmt.Println("\nEnter the full path of the folder you want to organize.")
		fmt.Print("Folder path: ")

		var input string
		select {
		case <-ctx.Done():
			fmt.Println()
			return "", ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return "", nil
			}
			input = strings.Trim(strings.TrimSpace(line), `"`)
		}

		if input == "" {
			fmt.Println("Path cannot be empty.")
			continue
		}

		abs, err := config.SaveWorkdir(input)
		if err != nil {
			fmt.Printf("That path is not a usable folder: %s\n", input)
			continue
		}

		fmt.Printf("Folder set to: %s\n", abs)
		return abs, nil
	}
}
