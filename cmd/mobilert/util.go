package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
)

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(s))
	os.Exit(1)
}

func colorEnabled() bool {
	if viper.GetBool("no-color") {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func red(s string) string {
	if !colorEnabled() {
		return s
	}
	return color.New(color.FgRed).Sprint(s)
}

func bold(s string) string {
	if !colorEnabled() {
		return s
	}
	return color.New(color.Bold).Sprint(s)
}
