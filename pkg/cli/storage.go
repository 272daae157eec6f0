/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/hostk8s/hostk8s/pkg/config"
	"github.com/hostk8s/hostk8s/pkg/hostpath"
	"github.com/hostk8s/hostk8s/pkg/k8s/client"
	"github.com/hostk8s/hostk8s/pkg/k8s/volume"
	"github.com/hostk8s/hostk8s/pkg/storage"
)

func storageCmd() *cli.Command {
	return &cli.Command{
		Name:  "storage",
		Usage: "Manage stack storage contracts",
		Commands: []*cli.Command{
			storageSetupCmd(),
			storageCleanupCmd(),
			storageListCmd(),
		},
	}
}

// newStorageManager wires the cluster-facing manager: kubeconfig detection,
// Kubernetes client, volume provisioner, and node directory preparer.
func newStorageManager(cfg *config.Config) (*storage.Manager, error) {
	kubeconfig, err := config.DetectKubeconfig(cfg.Kubeconfig)
	if err != nil {
		return nil, err
	}
	cfg.Kubeconfig = kubeconfig

	kc, err := client.GetKubeClient(cfg.Kubeconfig)
	if err != nil {
		return nil, err
	}

	return storage.New(cfg, volume.New(kc), hostpath.New(cfg.NodeContainer())), nil
}

func storageSetupCmd() *cli.Command {
	return &cli.Command{
		Name:                  "setup",
		EnableShellCompletion: true,
		Usage:                 "Provision storage for a stack from its contract",
		ArgsUsage:             "<stack>",
		Description: `Read the stack's hostk8s.storage.yaml contract and provision the declared
storage: StorageClasses first, then one hostPath PersistentVolume per
directory, then directory creation and permissions inside the Kind node
container.

Existing resources are preserved untouched, so re-running setup against an
unchanged contract is a no-op.

Examples:
  hostk8s storage setup sample
  hostk8s storage setup sample --stacks-dir software/stacks`,
		Flags: []cli.Flag{
			stacksDirFlag,
			kubeconfigFlag,
			clusterNameFlag,
			debugFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := initCommand(cmd)
			if err != nil {
				return err
			}

			stack, err := requireStack(cmd, "hostk8s storage setup <stack>")
			if err != nil {
				return err
			}

			mgr, err := newStorageManager(cfg)
			if err != nil {
				return err
			}

			rep, err := mgr.Setup(ctx, stack)
			if err != nil {
				return err
			}

			return printReport(rep, "storage setup", stack)
		},
	}
}

func storageCleanupCmd() *cli.Command {
	return &cli.Command{
		Name:                  "cleanup",
		EnableShellCompletion: true,
		Usage:                 "Remove a stack's PersistentVolumes",
		ArgsUsage:             "<stack>",
		Description: `Delete the PersistentVolumes labeled for the stack. Host directories and
the data in them are preserved, so a later setup reuses them.

Examples:
  hostk8s storage cleanup sample`,
		Flags: []cli.Flag{
			stacksDirFlag,
			kubeconfigFlag,
			clusterNameFlag,
			debugFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := initCommand(cmd)
			if err != nil {
				return err
			}

			stack, err := requireStack(cmd, "hostk8s storage cleanup <stack>")
			if err != nil {
				return err
			}

			mgr, err := newStorageManager(cfg)
			if err != nil {
				return err
			}

			deleted, err := mgr.Cleanup(ctx, stack)
			if err != nil {
				return err
			}

			for _, name := range deleted {
				fmt.Printf("  removed %s\n", name)
			}
			fmt.Printf("storage cleanup completed for stack %q (%d volumes removed)\n", stack, len(deleted))
			return nil
		},
	}
}

func storageListCmd() *cli.Command {
	return &cli.Command{
		Name:                  "list",
		EnableShellCompletion: true,
		Usage:                 "Show storage contracts and their cluster state",
		ArgsUsage:             "[stack]",
		Description: `List the directories declared by a stack's storage contract together with
the state of their PersistentVolumes. Without a stack argument, every stack
under the stacks directory is listed.

The listing works without a running cluster; volumes are then reported as
Missing.

Examples:
  hostk8s storage list
  hostk8s storage list sample`,
		Flags: []cli.Flag{
			stacksDirFlag,
			kubeconfigFlag,
			clusterNameFlag,
			debugFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := initCommand(cmd)
			if err != nil {
				return err
			}

			// Listing is read-only and should work without a cluster.
			var prov storage.Provisioner
			if kubeconfig, err := config.DetectKubeconfig(cfg.Kubeconfig); err == nil {
				if kc, err := client.GetKubeClient(kubeconfig); err == nil {
					prov = volume.New(kc)
				} else {
					slog.Debug("kubernetes client unavailable, listing contracts only", "error", err)
				}
			} else {
				slog.Debug("no kubeconfig detected, listing contracts only", "error", err)
			}

			mgr := storage.New(cfg, prov, nil)

			stacks, err := mgr.List(ctx, cmd.Args().First())
			if err != nil {
				return err
			}

			for _, st := range stacks {
				if !st.HasContract {
					fmt.Printf("%s: no storage contract\n", st.Stack)
					continue
				}
				fmt.Printf("%s:\n", st.Stack)
				for _, dir := range st.Directories {
					state := "Missing"
					if dir.Ready {
						state = "Ready"
					}
					fmt.Printf("  %s: %s at %s - %s\n", dir.Name, dir.Size, dir.Path, state)
				}
			}
			return nil
		},
	}
}
