package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"gamenode/host/link"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
)

var schemes = map[string]uint8{
	"slider":   0,
	"joystick": 1,
	"tilt":     2,
}

var difficulties = map[string]uint8{
	"hard":       0,
	"extreme":    1,
	"impossible": 2,
}

func main() {
	flag.Parse()

	fmt.Println("Game Node Host - operator console")
	fmt.Println("=================================")

	fmt.Printf("Connecting to node on %s...\n", *device)
	l, err := link.Connect(*device)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer l.Close()

	l.OnLivesLeft = func(lives int8) {
		fmt.Printf("\n<< lives left: %d\n> ", lives)
	}
	l.OnScore = func(score uint32) {
		fmt.Printf("\n<< score: %d\n> ", score)
	}
	l.OnDegraded = func(errCount uint8) {
		fmt.Printf("\n<< node degraded: %d actuator errors\n> ", errCount)
	}

	go func() {
		if err := l.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "\nlink error: %v\n", err)
			os.Exit(1)
		}
	}()

	fmt.Println("Connected. Type 'help' for commands, 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]

		switch cmd {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return

		case "help", "?":
			printHelp()

		case "score":
			if err := l.RequestScore(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		case "scheme":
			if len(parts) != 2 {
				fmt.Println("usage: scheme slider|joystick|tilt")
				continue
			}
			sel, ok := schemes[parts[1]]
			if !ok {
				fmt.Printf("unknown scheme %q\n", parts[1])
				continue
			}
			if err := l.SetControlScheme(sel); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		case "difficulty":
			if len(parts) != 2 {
				fmt.Println("usage: difficulty hard|extreme|impossible")
				continue
			}
			tier, ok := difficulties[parts[1]]
			if !ok {
				fmt.Printf("unknown difficulty %q\n", parts[1])
				continue
			}
			if err := l.SetDifficulty(tier); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		default:
			fmt.Printf("Unknown command: %s (type 'help' for available commands)\n", cmd)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  help                               - Show this help message")
	fmt.Println("  score                              - Request the current score")
	fmt.Println("  scheme slider|joystick|tilt        - Select the control scheme")
	fmt.Println("  difficulty hard|extreme|impossible - Select the difficulty tier")
	fmt.Println("  quit/exit/q                        - Exit the program")
	fmt.Println()
}
