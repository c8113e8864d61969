// Command playerpp is the one-shot CLI for the player preprocessor: it
// reads a player file, solves the requested n/sig challenges, and prints a
// single JSON response document per spec.md §6.3.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/elucid503/playerpp/v2/internal/bridge"
	"github.com/elucid503/playerpp/v2/internal/protocol"
)

func printUsage(program string) {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] <player> [<type>:<request> ...]\n\n", program)
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --runtime <runtime>  JavaScript runtime to use")
	fmt.Fprintf(os.Stderr, "                       Available: %s\n\n", strings.Join(bridge.Names(), ", "))
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintf(os.Stderr, "  %s player.js n:ZdZIqFPQK-Ty8wId\n", program)
	fmt.Fprintf(os.Stderr, "  %s --runtime otto player.js sig:gN7a-hudCuAuPH6f...\n", program)
}

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	program := args[0]

	if len(args) < 2 {
		printUsage(program)
		return 1
	}

	var playerPath string
	var requestArgs []string
	runtimeName := "goja"

	i := 1
	for i < len(args) {
		switch arg := args[i]; arg {
		case "--runtime":
			i++
			if i >= len(args) {
				fmt.Fprintln(os.Stderr, "ERROR: --runtime requires an argument")
				return 1
			}
			runtimeName = args[i]
		case "--help", "-h":
			printUsage(program)
			return 0
		default:
			if playerPath == "" {
				playerPath = arg
			} else {
				requestArgs = append(requestArgs, arg)
			}
		}
		i++
	}

	if playerPath == "" {
		fmt.Fprintln(os.Stderr, "ERROR: missing player file argument")
		printUsage(program)
		return 1
	}
	if len(requestArgs) == 0 {
		fmt.Fprintln(os.Stderr, "ERROR: at least one request is required")
		printUsage(program)
		return 1
	}

	content, err := os.ReadFile(playerPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to read player file: %v\n", err)
		return 1
	}

	requests, err := groupRequests(requestArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}

	if _, err := bridge.New(runtimeName); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}

	input := &protocol.Input{Player: &protocol.PlayerInput{
		Player:   string(content),
		Requests: requests,
	}}

	// Preprocessing and solving run on a dedicated goroutine so main stays
	// uncluttered; the channel hands back the one Output value once ready.
	results := make(chan protocol.Output, 1)
	go func() {
		results <- protocol.Process(input, runtimeName)
	}()
	output := <-results

	encoded, err := json.Marshal(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to serialize output: %v\n", err)
		return 1
	}
	fmt.Println(string(encoded))
	return 0
}

// groupRequests splits each "<kind>:<input>" argument on the first colon
// and groups inputs by kind into at most two Requests (n, then sig),
// omitting a kind entirely when no argument named it.
func groupRequests(args []string) ([]protocol.Request, error) {
	var nChallenges, sigChallenges []string

	for _, arg := range args {
		kind, challenge, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("invalid request format: %s", arg)
		}
		switch kind {
		case "n":
			nChallenges = append(nChallenges, challenge)
		case "sig":
			sigChallenges = append(sigChallenges, challenge)
		default:
			return nil, fmt.Errorf("unsupported request type: %s", kind)
		}
	}

	var requests []protocol.Request
	if len(nChallenges) > 0 {
		requests = append(requests, protocol.Request{Type: protocol.RequestTypeN, Challenges: nChallenges})
	}
	if len(sigChallenges) > 0 {
		requests = append(requests, protocol.Request{Type: protocol.RequestTypeSig, Challenges: sigChallenges})
	}
	return requests, nil
}
