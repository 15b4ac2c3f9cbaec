package main

import "ia-admin/internal/cli"

func main() {
	cli.Execute()
}
