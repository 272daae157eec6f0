/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/hostk8s/hostk8s/pkg/config"
	"github.com/hostk8s/hostk8s/pkg/logging"
	"github.com/hostk8s/hostk8s/pkg/report"
)

const (
	name           = "hostk8s"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flags shared across commands. Every value can also come from the
// environment (or the .env file loaded before parsing), matching how the
// surrounding make targets configure the cluster tooling.
var (
	debugFlag = &cli.BoolFlag{
		Name:    "debug",
		Usage:   "Enable debug logging",
		Sources: cli.EnvVars("HOSTK8S_DEBUG"),
	}

	stacksDirFlag = &cli.StringFlag{
		Name:    "stacks-dir",
		Usage:   "Root directory holding per-stack contract files",
		Sources: cli.EnvVars("HOSTK8S_STACKS_DIR"),
		Value:   config.DefaultStacksDir,
	}

	kubeconfigFlag = &cli.StringFlag{
		Name:    "kubeconfig",
		Usage:   "Path to kubeconfig file (auto-detected when unset)",
		Sources: cli.EnvVars("KUBECONFIG"),
	}

	clusterNameFlag = &cli.StringFlag{
		Name:    "cluster-name",
		Usage:   "Kind cluster name, names the node container",
		Sources: cli.EnvVars("CLUSTER_NAME"),
		Value:   config.DefaultClusterName,
	}

	vaultAddrFlag = &cli.StringFlag{
		Name:    "vault-addr",
		Usage:   "Vault server address",
		Sources: cli.EnvVars("VAULT_ADDR"),
		Value:   config.DefaultVaultAddr,
	}

	vaultTokenFlag = &cli.StringFlag{
		Name:    "vault-token",
		Usage:   "Vault authentication token",
		Sources: cli.EnvVars("VAULT_TOKEN"),
		Value:   config.DefaultVaultToken,
	}
)

// Root builds the hostk8s command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "HostK8s storage and secrets contract processor",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Description: `Processes declarative HostK8s contracts for a stack:

storage - reads hostk8s.storage.yaml and provisions StorageClasses and
          hostPath PersistentVolumes in the Kind cluster.

secrets - reads hostk8s.secrets.yaml, populates Vault with secret values,
          and generates ExternalSecret manifests for GitOps deployment.`,
		Commands: []*cli.Command{
			storageCmd(),
			secretsCmd(),
		},
	}
}

// Execute runs the CLI with a signal-cancelled root context. Called by
// main.main(); any error exits nonzero.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env before flag parsing so environment-sourced flags see it.
	if err := config.LoadEnvironment(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logging.SetDefaultStructuredLogger(name, version)

	if err := Root().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initCommand reconfigures logging per the command's flags and builds the
// runtime configuration every component receives. Nothing below the CLI
// reads the process environment.
func initCommand(cmd *cli.Command) (*config.Config, error) {
	if cmd.Bool("debug") {
		logging.SetDefaultStructuredLoggerWithLevel(name, version, "debug")
	}

	cfg := config.New(
		config.WithStacksDir(cmd.String("stacks-dir")),
		config.WithKubeconfig(cmd.String("kubeconfig")),
		config.WithVaultAddr(cmd.String("vault-addr")),
		config.WithVaultToken(cmd.String("vault-token")),
		config.WithClusterName(cmd.String("cluster-name")),
	)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("configuration loaded",
		"stacksDir", cfg.StacksDir,
		"vaultAddr", cfg.VaultAddr,
		"clusterName", cfg.ClusterName)

	return cfg, nil
}

// requireStack returns the stack name argument or an error naming the
// command's usage.
func requireStack(cmd *cli.Command, usage string) (string, error) {
	stack := cmd.Args().First()
	if stack == "" {
		return "", fmt.Errorf("stack name required, usage: %s", usage)
	}
	return stack, nil
}

// printReport renders the per-entry outcomes and returns the report's
// overall error so the process exits nonzero on partial success.
func printReport(rep *report.Report, operation, stack string) error {
	for _, res := range rep.Results() {
		switch res.Status {
		case report.StatusFailed:
			fmt.Printf("  %s: failed (%v)\n", res.Name, res.Err)
		default:
			fmt.Printf("  %s: %s\n", res.Name, res.Status)
		}
	}

	for _, w := range rep.Warnings() {
		slog.Warn(w)
	}

	if rep.Total() == 0 {
		fmt.Printf("%s: nothing to do for stack %q\n", operation, stack)
		return nil
	}

	if rep.Complete() {
		fmt.Printf("%s completed for stack %q (%d/%d processed)\n",
			operation, stack, rep.Succeeded(), rep.Total())
		return nil
	}

	fmt.Printf("%s failed for stack %q (%d/%d processed)\n",
		operation, stack, rep.Succeeded(), rep.Total())
	return rep.Err()
}
