package main

import (
	"fmt"
	"os"

	"github.com/tdewolff/fontfuzz"
)

type Run struct {
	Quiet  bool     `short:"q" desc:"Suppress output except for errors."`
	Inputs []string `index:"*" desc:"Input files."`
}

// Run feeds each input file through the fuzz target once. A crashing input
// crashes this process too, which is the point: it reproduces the failure
// outside the fuzzing engine.
func (cmd *Run) Run() error {
	if len(cmd.Inputs) == 0 {
		return fmt.Errorf("input file names not set")
	}
	for _, input := range cmd.Inputs {
		b, err := os.ReadFile(input)
		if err != nil {
			Error.Println(err)
			continue
		}
		if fontfuzz.Fuzz(b) == 1 {
			if !cmd.Quiet {
				fmt.Println(input, "parsed")
			}
		} else if !cmd.Quiet {
			fmt.Println(input, "not a font")
		}
	}
	return nil
}
