package main

import "github.com/SIDHARTHATHUMMANAPALLI/Athletic.ai/cmd"

func main() {
	cmd.Execute()
}
