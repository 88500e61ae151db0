package main

import "github.com/danahmadi/bookora_backend/cmd"

func main() {
	cmd.Execute()
}
