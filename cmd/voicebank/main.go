package main

import "github.com/ssargent/voicebank/cmd/voicebank/cmd"

func main() {
	cmd.Execute()
}
