package extension

import (
	"context"

	"pyfort/internal/config"
	"pyfort/internal/domain"
)

// Builder builds and installs the extension module
type Builder interface {
	Build(ctx context.Context) (domain.Artifact, error)
}

// ModuleBuilder generates the extension with f2py and installs the binary
// into the python package tree.
type ModuleBuilder struct {
	config    *config.Config
	generator *Generator
	installer *Installer
}

// NewModuleBuilder creates a new ModuleBuilder
func NewModuleBuilder(cfg *config.Config, generator *Generator, installer *Installer) *ModuleBuilder {
	return &ModuleBuilder{
		config:    cfg,
		generator: generator,
		installer: installer,
	}
}

// Build runs the generator and installs the resulting binary. A nonzero exit
// from the generator fails the build with no artifact and no install.
func (mb *ModuleBuilder) Build(ctx context.Context) (domain.Artifact, error) {
	suffix := mb.config.GetExtSuffix()
	if suffix == "" {
		detected, err := DetectSuffix(ctx, mb.config.GetPython())
		if err != nil {
			return domain.Artifact{}, err
		}
		suffix = detected
	}

	artifact := mb.generator.Describe(suffix)
	if err := mb.generator.Generate(ctx, artifact); err != nil {
		return domain.Artifact{}, err
	}

	if _, err := mb.installer.Install(suffix); err != nil {
		return domain.Artifact{}, err
	}

	return artifact, nil
}
