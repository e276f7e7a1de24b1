package main

import "blob-integration/cmd"

func main() {
	cmd.Execute()
}
