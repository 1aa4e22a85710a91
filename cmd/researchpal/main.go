package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/drbombe/researchpal/config"
	"github.com/drbombe/researchpal/internal/app"
)

func main() {
	var root = &cobra.Command{Use: "researchpal"}

	root.AddCommand(researchCMD(), evidenceCMD(), annotateCMD(), sourcesCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	return log.New(os.Stdout, "[RESEARCHPAL] ", log.LstdFlags)
}

func newApp(cfgPath string) (*app.App, error) {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	return app.New(cfg, newLogger())
}
