package main

import (
	"fmt"
	"os"
)

// @title Livestock Registry API
// @version 1.0
// @description Registro de ganado bovino y bubalino con identificación de raza asistida por IA.
// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
