package main

import (
	"log"
	"os"

	"github.com/benoitkugler/hexturtle/cmd/hexturtle/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hexturtle: ")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
