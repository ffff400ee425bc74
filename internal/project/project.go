// Package project defines the build configuration for a Palel project
// and its optional palel.yaml override file.
package project

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the paths and tool invocation the build driver needs.
type Config struct {
	SrcDir        string   `yaml:"src_dir"`
	DestDir       string   `yaml:"dest_dir"`
	BinName       string   `yaml:"bin_name"`
	CCompiler     string   `yaml:"c_compiler"`
	CCompilerArgs []string `yaml:"c_compiler_args"`
}

// Default builds the default configuration: src "./src", dest
// "./build", bin name from the current working directory's basename,
// or "build-artifact" if that cannot be determined.
func Default() Config {
	return Config{
		SrcDir:    "./src",
		DestDir:   "./build",
		BinName:   defaultBinName(),
		CCompiler: "gcc",
	}
}

func defaultBinName() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "build-artifact"
	}
	base := filepath.Base(cwd)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "build-artifact"
	}
	return base
}

// Load returns the default configuration overridden by any field set
// in the palel.yaml at configPath. A missing configPath is not an
// error; Default() is returned unchanged.
func Load(configPath string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return cfg, err
	}

	if override.SrcDir != "" {
		cfg.SrcDir = override.SrcDir
	}
	if override.DestDir != "" {
		cfg.DestDir = override.DestDir
	}
	if override.BinName != "" {
		cfg.BinName = override.BinName
	}
	if override.CCompiler != "" {
		cfg.CCompiler = override.CCompiler
	}
	if len(override.CCompilerArgs) > 0 {
		cfg.CCompilerArgs = override.CCompilerArgs
	}

	return cfg, nil
}
