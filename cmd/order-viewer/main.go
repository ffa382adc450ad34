package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/wb_order_viewer/internal/cli"
)

func main() {
	_ = godotenv.Load(".env.local")

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
