package main

import (
	"log"
	"os"

	"github.com/tdewolff/argp"
)

var Error *log.Logger

func main() {
	Error = log.New(os.Stderr, "ERROR: ", 0)

	cmd := argp.New("Fuzzing toolkit for the name table of TTF and OTF files - Taco de Wolff")
	cmd.AddCmd(&Seed{}, "seed", "Write the seed corpus")
	cmd.AddCmd(&Run{}, "run", "Replay corpus or crasher files through the fuzz target")
	cmd.Parse()
}
