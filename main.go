package main

import (
	"github.com/joho/godotenv"

	"github.com/TRX-1000/Weatherly-v2/cmd"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Best-effort: a missing .env just means the key comes from the
	// config file or the real environment.
	_ = godotenv.Load()

	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
