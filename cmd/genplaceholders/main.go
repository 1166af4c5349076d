package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/ninja/internal/placeholders"
)

func main() {
	out := flag.String("out", "data", "data directory to write the placeholder assets into")
	flag.Parse()

	fmt.Println("Ninja Placeholder Asset Generator")
	fmt.Println("=================================")
	fmt.Println()

	if err := placeholders.Generate(*out, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder assets are ready to use.")
	fmt.Println("Run the game or the editor to see them in action!")
}
