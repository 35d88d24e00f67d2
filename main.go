package main

import (
	"os"

	"github.com/df07/go-weekend-raytracer/cmd"
	"github.com/df07/go-weekend-raytracer/pkg/log"
)

func main() {
	if err := cmd.NewApp().Run(os.Args); err != nil {
		log.New("raytracer").Error(err)
		os.Exit(1)
	}
}
