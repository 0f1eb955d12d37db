package main

import "github.com/ValentinKolb/bsamples/cmd"

func main() {
	cmd.Execute()
}
