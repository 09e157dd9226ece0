package main

import "HealthCompanion/cmd/api/command"

func main() {
	command.Execute()
}
