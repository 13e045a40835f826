package main

import (
	"fmt"
	"os"

	"nlp_qa/internal"
)

func main() {
	if err := internal.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
