package main

import "siteserve/cmd"

func main() {
	cmd.Execute()
}
