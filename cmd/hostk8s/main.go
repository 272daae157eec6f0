/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"github.com/hostk8s/hostk8s/pkg/cli"
)

func main() {
	cli.Execute()
}
