package main

import (
	_ "github.com/joho/godotenv/autoload" // automatically load .env files

	"github.com/jleechanorg/codex-fork/internal/cmd"
)

func main() {
	cmd.Execute()
}
