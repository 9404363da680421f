package main

import (
	"taskdesk.io/infrastructure"
	"taskdesk.io/infrastructure/env"
)

func init() {
	env.LoadEnv()
}

func main() {
	infrastructure.StartServer()
}
