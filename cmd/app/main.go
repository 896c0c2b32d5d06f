package main

import (
	"github.com/picparty/core/internal/app"
	"github.com/picparty/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
