package main

import "handoff-tracker.com/handoff-tracker/cmd"

func main() {
	cmd.Execute()
}
