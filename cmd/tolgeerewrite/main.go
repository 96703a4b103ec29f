// Command tolgeerewrite rewrites string resource lookups to Tolgee replacement functions.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/datlag/tolgeerewrite"
)

func main() {
	singlechecker.Main(tolgeerewrite.Analyzer)
}
