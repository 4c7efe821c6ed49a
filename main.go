package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/hannahgnatheer/portfolio/cmd"
)

func main() {
	cmd.Execute()
}
