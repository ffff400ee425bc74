// Command palel is the CLI entry point for the Palel-to-C transpiler,
// wired against Cobra for command dispatch.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/palel-lang/palelc/internal/build"
	"github.com/palel-lang/palelc/internal/palelerr"
	"github.com/palel-lang/palelc/internal/project"
	"github.com/palel-lang/palelc/internal/replshell"
)

// Version info — set by ldflags during release builds.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

var (
	flagConfig = "palel.yaml"
)

func main() {
	root := &cobra.Command{
		Use:   "palel",
		Short: "Compile Palel source to a native binary via C",
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "palel.yaml", "project config file")

	root.AddCommand(buildCmd(), runCmd(), replCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red("Error:"), err)
		os.Exit(1)
	}
}

func loadConfig() project.Config {
	cfg, err := project.Load(flagConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, red("Error:"), "failed to load", flagConfig, err)
		os.Exit(2)
	}
	return cfg
}

func runPipeline() build.Result {
	cfg := loadConfig()
	result, cerr := build.Run(cfg)
	if cerr != nil {
		fmt.Fprintln(os.Stderr, red("Error:"), cerr.Error())
		os.Exit(exitCode(cerr))
	}
	return result
}

func exitCode(err *palelerr.Error) int {
	return err.Kind.ExitCode()
}

func buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Transpile and compile the project to a native binary",
		Run: func(cmd *cobra.Command, args []string) {
			result := runPipeline()
			fmt.Println(green(bold("built")), result.BinaryPath)
		},
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Build, then execute the produced binary",
		Run: func(cmd *cobra.Command, args []string) {
			result := runPipeline()
			run := exec.Command(result.BinaryPath)
			run.Stdout = os.Stdout
			run.Stderr = os.Stderr
			run.Stdin = os.Stdin
			if err := run.Run(); err != nil {
				fmt.Fprintln(os.Stderr, red("Error:"), err)
				os.Exit(1)
			}
		},
	}
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive debug console",
		Run: func(cmd *cobra.Command, args []string) {
			shell := replshell.New(os.Stdout)
			if err := shell.Run(); err != nil {
				fmt.Fprintln(os.Stderr, red("Error:"), err)
				os.Exit(1)
			}
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("palel %s (commit %s, built %s)\n", Version, Commit, BuildTime)
		},
	}
}
