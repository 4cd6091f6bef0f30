// SPDX-License-Identifier: MPL-2.0

// aboutgen turns .about component descriptors into inventories and
// attribution documents.
package main

import cmd "aboutgen-cli/cmd/aboutgen"

func main() {
	cmd.Execute()
}
