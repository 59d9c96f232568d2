package main

import (
	"os"

	"github.com/bistroboss/server/bistroservice"
)

func main() {
	if err := bistroservice.Run(); err != nil {
		os.Exit(1)
	}
}
