/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hostk8s/hostk8s/pkg/config"
	"github.com/hostk8s/hostk8s/pkg/secrets"
	"github.com/hostk8s/hostk8s/pkg/vault"
)

func secretsCmd() *cli.Command {
	return &cli.Command{
		Name:  "secrets",
		Usage: "Manage stack secret contracts",
		Commands: []*cli.Command{
			secretsAddCmd(),
			secretsRemoveCmd(),
			secretsListCmd(),
		},
	}
}

func newSecretsManager(cfg *config.Config) (*secrets.Manager, error) {
	store, err := vault.New(cfg.VaultAddr, cfg.VaultToken)
	if err != nil {
		return nil, err
	}
	return secrets.New(cfg, store), nil
}

func secretsAddCmd() *cli.Command {
	return &cli.Command{
		Name:                  "add",
		EnableShellCompletion: true,
		Usage:                 "Populate Vault and generate manifests from a stack's secret contract",
		ArgsUsage:             "<stack>",
		Description: `Read the stack's hostk8s.secrets.yaml contract, write each secret's data
to Vault, and regenerate the stack's ExternalSecret manifest file.

Secrets already present in Vault are preserved, only their manifest entry is
regenerated. Generated values (password, token, hex, uuid) are therefore
stable across runs.

Examples:
  hostk8s secrets add sample
  hostk8s secrets add sample --vault-addr http://localhost:8080`,
		Flags: []cli.Flag{
			stacksDirFlag,
			vaultAddrFlag,
			vaultTokenFlag,
			debugFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := initCommand(cmd)
			if err != nil {
				return err
			}

			stack, err := requireStack(cmd, "hostk8s secrets add <stack>")
			if err != nil {
				return err
			}

			mgr, err := newSecretsManager(cfg)
			if err != nil {
				return err
			}

			rep, err := mgr.Add(ctx, stack)
			if err != nil {
				return err
			}

			return printReport(rep, "secrets add", stack)
		},
	}
}

func secretsRemoveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "remove",
		EnableShellCompletion: true,
		Usage:                 "Remove a stack's secrets from Vault",
		ArgsUsage:             "<stack>",
		Description: `Delete the stack's secrets from Vault and remove its ExternalSecret
manifest file. With a readable contract the contract's entries are deleted;
without one, every Vault path under the stack's prefix is removed.

Examples:
  hostk8s secrets remove sample`,
		Flags: []cli.Flag{
			stacksDirFlag,
			vaultAddrFlag,
			vaultTokenFlag,
			debugFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := initCommand(cmd)
			if err != nil {
				return err
			}

			stack, err := requireStack(cmd, "hostk8s secrets remove <stack>")
			if err != nil {
				return err
			}

			mgr, err := newSecretsManager(cfg)
			if err != nil {
				return err
			}

			if err := mgr.Remove(ctx, stack); err != nil {
				return err
			}

			fmt.Printf("secrets removed for stack %q\n", stack)
			return nil
		},
	}
}

func secretsListCmd() *cli.Command {
	return &cli.Command{
		Name:                  "list",
		EnableShellCompletion: true,
		Usage:                 "List secret paths stored in Vault",
		ArgsUsage:             "[stack]",
		Description: `List the Vault paths under a stack's prefix. Without a stack argument,
the stack prefixes at the root of the mount are listed. Entries ending in
"/" are folders.

Examples:
  hostk8s secrets list
  hostk8s secrets list sample`,
		Flags: []cli.Flag{
			vaultAddrFlag,
			vaultTokenFlag,
			debugFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := initCommand(cmd)
			if err != nil {
				return err
			}

			mgr, err := newSecretsManager(cfg)
			if err != nil {
				return err
			}

			stack := cmd.Args().First()
			keys, err := mgr.List(ctx, stack)
			if err != nil {
				return err
			}

			if len(keys) == 0 {
				fmt.Println("no secrets found")
				return nil
			}
			for _, key := range keys {
				fmt.Println(key)
			}
			return nil
		},
	}
}
