package main

import "github.com/inference-gateway/keychord/cmd"

func main() {
	cmd.Execute()
}
