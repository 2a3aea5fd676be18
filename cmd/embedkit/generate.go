package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mtlprog/embedkit/internal/clipboard"
	"github.com/mtlprog/embedkit/internal/config"
	"github.com/mtlprog/embedkit/internal/domain"
	"github.com/mtlprog/embedkit/internal/emitter"
	"github.com/mtlprog/embedkit/internal/handler/dto"
	"github.com/mtlprog/embedkit/internal/logger"
	"github.com/mtlprog/embedkit/internal/service"
	"github.com/mtlprog/embedkit/internal/ui"
)

// targetKinds maps the --target flag to artifact kinds.
func targetKinds(target string) ([]domain.ArtifactKind, error) {
	switch target {
	case "", "all":
		return nil, nil
	case "cms":
		return []domain.ArtifactKind{domain.ArtifactCmsShortcode}, nil
	default:
		kind := domain.ArtifactKind(target)
		if !kind.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownArtifactKind, target)
		}
		return []domain.ArtifactKind{kind}, nil
	}
}

// readRequest loads the input file, if any, and applies flag overrides.
func readRequest(c *cli.Context) (dto.GenerateArtifactsRequest, error) {
	var req dto.GenerateArtifactsRequest

	if path := c.String("input"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return req, fmt.Errorf("read input: %w", err)
		}
		if err := json.Unmarshal(data, &req); err != nil {
			return req, fmt.Errorf("parse input %s: %w", path, err)
		}
	}

	if id := c.String("agent-id"); id != "" {
		if req.Agent == nil {
			req.Agent = &dto.AgentInput{}
		}
		req.Agent.ID = id
	}
	if name := c.String("agent-name"); name != "" {
		if req.Agent == nil {
			req.Agent = &dto.AgentInput{}
		}
		req.Agent.Name = name
	}
	if deployment := c.String("deployment"); deployment != "" {
		req.Deployment = deployment
	}

	return req, nil
}

func runGenerate(c *cli.Context) error {
	// stdout carries the artifacts
	logger.SetupWriter(os.Stderr, logger.ParseLevel(c.String("log-level")), c.String("log-format"))

	embedHost := c.String("embed-host")
	if err := config.ValidateEmbedHost(embedHost); err != nil {
		return err
	}

	req, err := readRequest(c)
	if err != nil {
		return err
	}

	targets := req.Kinds()
	if c.IsSet("target") || len(targets) == 0 {
		if targets, err = targetKinds(c.String("target")); err != nil {
			return err
		}
	}

	svc := service.NewArtifactService(emitter.New(emitter.Config{HostTemplate: embedHost}), nil, nil, nil)

	artifacts, err := svc.Generate(c.Context, service.GenerateRequest{
		Agent:         req.Agent.ToDomain(),
		Deployment:    req.Deployment,
		Customization: req.Customization.Apply(domain.DefaultCustomization()),
		Targets:       targets,
	})
	if err != nil {
		fmt.Fprint(c.App.ErrWriter, ui.ErrorLine(err))
		return err
	}

	fmt.Fprint(c.App.Writer, ui.RenderArtifacts(artifacts))

	if !c.Bool("copy") {
		return nil
	}
	if len(artifacts) != 1 {
		return errors.New("--copy needs a single --target")
	}
	if err := clipboard.New().Copy(artifacts[0].SourceText); err != nil {
		return err
	}
	fmt.Fprint(c.App.ErrWriter, ui.Note("%s copied to clipboard", ui.Title(artifacts[0].Kind)))

	return nil
}
