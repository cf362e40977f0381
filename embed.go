package main

import (
	_ "embed"
)

var (
	//go:embed flappy.toml
	Flappy_toml string
)
