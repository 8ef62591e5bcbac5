package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	yukoncmd "github.com/jason-s-yu/yukon/internal/cmd/yukon"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := yukoncmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		logrus.Fatalf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := yukoncmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		logrus.Fatalf("yukon: %v", err)
	}
}
