package main

import (
	"fmt"
	"os"

	"github.com/SeakMengs/CertVerify/internal/env"
)

func init() {
	env.LoadEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
