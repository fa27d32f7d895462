package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tdewolff/fontfuzz"
)

type Seed struct {
	Force  bool   `short:"f" desc:"Force overwriting existing files."`
	Output string `index:"0" desc:"Output corpus directory."`
}

func (cmd *Seed) Run() error {
	if cmd.Output == "" {
		cmd.Output = "corpus"
	}
	if err := os.MkdirAll(cmd.Output, 0777); err != nil {
		return err
	}
	for i, seed := range fontfuzz.Seeds() {
		output := filepath.Join(cmd.Output, fmt.Sprintf("seed%02d", i))
		if !cmd.Force {
			if _, err := os.Stat(output); err == nil {
				return fmt.Errorf("%v: file already exists", output)
			}
		}
		if err := os.WriteFile(output, seed, 0666); err != nil {
			return err
		}
	}
	return nil
}
