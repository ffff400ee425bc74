// Package build composes source discovery, parsing, transpilation,
// rendering, and the downstream C compiler invocation into a single
// entry point.
package build

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/palel-lang/palelc/internal/ast"
	"github.com/palel-lang/palelc/internal/ccodegen"
	"github.com/palel-lang/palelc/internal/loader"
	"github.com/palel-lang/palelc/internal/palelerr"
	"github.com/palel-lang/palelc/internal/parser"
	"github.com/palel-lang/palelc/internal/project"
	"github.com/palel-lang/palelc/internal/toolkit"
	"github.com/palel-lang/palelc/internal/transpile"
)

// Result reports the artifacts of a successful Run.
type Result struct {
	COutputPath string
	BinaryPath  string
}

// Run executes the full pipeline against cfg: discover every .palel
// file under cfg.SrcDir, parse each into a shared ast.Src, transpile
// once, render once, write the result to <cfg.DestDir>/code/main.c, and
// invoke the configured C compiler on it. Every error is fail-fast and
// reported via the closed palelerr taxonomy.
func Run(cfg project.Config) (Result, *palelerr.Error) {
	files, err := loader.Load(cfg.SrcDir)
	if err != nil {
		return Result{}, err
	}

	src := &ast.Src{}
	for _, f := range files {
		parsed, perr := parser.ParseFile(f.RelPath, f.Content)
		if perr != nil {
			return Result{}, perr
		}
		src.Programs = append(src.Programs, parsed.Programs...)
	}

	unit, terr := transpile.Transpile(toolkit.New(), src)
	if terr != nil {
		return Result{}, terr
	}

	rendered := ccodegen.Render(unit)

	codeDir := filepath.Join(cfg.DestDir, "code")
	if err := os.MkdirAll(codeDir, 0o755); err != nil {
		return Result{}, palelerr.NewFailedToWriteToFile(codeDir)
	}
	cOutputPath := filepath.Join(codeDir, "main.c")
	if err := os.WriteFile(cOutputPath, []byte(rendered), 0o644); err != nil {
		return Result{}, palelerr.NewFailedToWriteToFile(cOutputPath)
	}

	binName := cfg.BinName
	if binName == "" {
		binName = "build-artifact"
	}
	binaryPath := filepath.Join(cfg.DestDir, binName)

	compiler := cfg.CCompiler
	if compiler == "" {
		compiler = "gcc"
	}
	args := append([]string{cOutputPath, "-o", binaryPath}, cfg.CCompilerArgs...)
	cmd := exec.Command(compiler, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return Result{}, palelerr.NewDownstreamCompileFailed()
	}

	return Result{COutputPath: cOutputPath, BinaryPath: binaryPath}, nil
}
