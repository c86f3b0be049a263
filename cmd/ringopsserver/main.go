package main

import (
	"flag"
	"log"

	"github.com/hnakamur/euclideanring"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	if err := euclideanring.RunWebApp(*addr); err != nil {
		log.Fatal(err)
	}
}
