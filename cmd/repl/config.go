package main

import "github.com/ccdavis/schemer"

func loadConfig() (schemer.Config, error) {
	return schemer.LoadConfig()
}
