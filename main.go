package main

import "github.com/jmehdipour/jobs-api/cmd"

func main() {
	cmd.Execute()
}
