package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for atilog",
	Long:  `Display detailed help for all atilog commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
 █████╗ ████████╗██╗██╗      ██████╗  ██████╗
██╔══██╗╚══██╔══╝██║██║     ██╔═══██╗██╔════╝
███████║   ██║   ██║██║     ██║   ██║██║  ███╗
██╔══██║   ██║   ██║██║     ██║   ██║██║   ██║
██║  ██║   ██║   ██║███████╗╚██████╔╝╚██████╔╝
╚═╝  ╚═╝   ╚═╝   ╚═╝╚══════╝ ╚═════╝  ╚═════╝

atilog - CLI work activity logger

COMMANDS:

  add                     Log a new activity record
    -i, --interactive     Force the interactive form (default when no
                          classification flag is given)
    -u, --unit            Unit (e.g. CJ, NLC)
    -a, --activity        Activity type (e.g. "Reunião")
    -m, --manifestation   Manifestation type (e.g. "Parecer")
    -w, --with            Companion name, repeatable, max 3
    -d, --duration        Duration bucket (e.g. "15 a 30 min")
    --difficulty          Baixa | Média | Alta | Muito alta
    --urgent              Mark as urgent
    --date, --time        Event date/time (default: now)
    --notes               Free-text notes
    --audio               Attach an audio file
    --transcript          Attach a transcript (also lands in notes)

    Picking an activity clears any manifestation and vice versa.
    A manifestation requires at least one companion.

  ls                      List records
    -u, --unit            Filter by unit
    --date                Filter by date (YYYY-MM-DD)
    --json                JSON output

  edit <id>               Edit a record (id prefix is enough)
  rm <id>                 Delete a record
    -f, --force           Skip confirmation

  export csv [file]       CSV export (fixed column layout)
  export json [file]      JSON record backup
  export options [file]   Pick-lists backup

  import records <file>   Restore records (old backups are migrated)
  import options <file>   Merge pick-lists over the defaults

  options ls              Show the pick-lists
  options add <list> <v>  Extend a pick-list
  options rm <list> <v>   Shrink a pick-list

  summary                 Counts per classification + estimated hours
    --by                  Group by: activity | manifestation
    --no-ui               Plain text output

  version                 Show version information
  help                    Show this help

`)
}
