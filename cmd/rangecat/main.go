package main

import (
	"context"

	"go.llib.dev/frameless/pkg/cli"

	"go.llib.dev/sugar/internal/rangecat"
)

func main() {
	cli.Main(context.Background(), rangecat.NewMux(nil))
}
