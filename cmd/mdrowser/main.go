package main

import (
	"log"

	"github.com/kmj8843/mdrowser/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
