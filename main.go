package main

import "github.com/ntruongan356-byte/AppStore-Nokio/cmd"

func main() {
	cmd.Execute()
}
