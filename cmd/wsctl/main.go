package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/qiniu/wsmanager/internal/config"
	"github.com/qiniu/wsmanager/internal/trace"
	"github.com/qiniu/wsmanager/internal/workspace"
	"github.com/qiniu/wsmanager/pkg/models"
	"github.com/qiniu/x/log"
)

type CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"config.yaml"`
	EnvFile string `help:"Environment file loaded before the configuration" default:".env"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	List struct{} `cmd:"" help:"List all workspaces, marking the current one"`

	Current struct{} `cmd:"" help:"Show the current workspace"`

	Get struct {
		Name string `arg:"" help:"Workspace name"`
	} `cmd:"" help:"Show a workspace by name"`

	Use struct {
		Name string `arg:"" help:"Workspace name"`
	} `cmd:"" help:"Select the current workspace"`

	Add struct {
		Name   string `arg:"" help:"Workspace name"`
		Path   string `arg:"" help:"Workspace path"`
		Select bool   `short:"s" help:"Also select the new workspace"`
	} `cmd:"" help:"Add or replace a workspace"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("wsctl"),
		kong.Description("Inspect and select configured workspaces."),
	)

	if cli.Verbose {
		log.SetOutputLevel(log.Ldebug)
	}

	if err := config.LoadDotEnv(cli.EnvFile); err != nil {
		log.Fatalf("Failed to load env file: %v", err)
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	manager, err := cfg.Build()
	if err != nil {
		log.Fatalf("Failed to build workspace manager: %v", err)
	}

	if err := run(context.Background(), kctx.Command(), &cli, manager, os.Stdout); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

// run executes one command against manager and writes the result to out
func run(ctx context.Context, command string, cli *CLI, manager *workspace.Manager, out io.Writer) error {
	switch command {
	case "list":
		ctx = trace.NewContext(ctx, trace.NewTraceID(trace.ListPrefix))
		trace.Debug(ctx, "Listing %d workspaces", manager.Count())
		return workspace.WriteList(out, manager)

	case "current":
		ctx = trace.NewContext(ctx, trace.NewTraceID(trace.CurrentPrefix))
		trace.Debug(ctx, "Current workspace: %s", manager.CurrentName())
		return workspace.WriteWorkspace(out, manager.GetCurrentWorkspace())

	case "get <name>":
		ctx = trace.NewContext(ctx, trace.NewTraceID(trace.GetPrefix))
		ws, ok := manager.GetWorkspace(cli.Get.Name)
		if !ok {
			trace.Debug(ctx, "Workspace %s not registered", cli.Get.Name)
			return workspace.NewNotFoundError(cli.Get.Name)
		}
		return workspace.WriteWorkspace(out, ws)

	case "use <name>":
		ctx = trace.NewContext(ctx, trace.NewTraceID(trace.UsePrefix))
		previous := manager.CurrentName()
		if err := manager.SetCurrentWorkspace(cli.Use.Name); err != nil {
			trace.Error(ctx, "Failed to select workspace: %v", err)
			return fmt.Errorf("use: %w", err)
		}
		trace.Info(ctx, "Selected workspace %s (was %s)", cli.Use.Name, previous)
		return workspace.WriteWorkspace(out, manager.GetCurrentWorkspace())

	case "add <name> <path>":
		ctx = trace.NewContext(ctx, trace.NewTraceID(trace.AddPrefix))
		ws := models.Workspace{Name: cli.Add.Name, Path: cli.Add.Path}
		manager.AddWorkspace(ws)
		trace.Info(ctx, "Added workspace %s at %s", ws.Name, ws.Path)
		if cli.Add.Select {
			if err := manager.SetCurrentWorkspace(ws.Name); err != nil {
				return fmt.Errorf("add: %w", err)
			}
		}
		return workspace.WriteList(out, manager)

	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
