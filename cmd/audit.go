package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/audit"
)

var auditCmd = &cobra.Command{
	Use:   "audit <file>",
	Short: "Display guard events from an audit log",
	Args:  cobra.ExactArgs(1),
	RunE:  runAudit,
}

var auditClear bool

func init() {
	auditCmd.Flags().BoolVar(&auditClear, "clear", false, "Delete the audit log after displaying it")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	auditLogger := audit.NewLogger(args[0])
	events, err := auditLogger.Events()
	if err != nil {
		return fmt.Errorf("failed to read audit log: %w", err)
	}

	if len(events) == 0 {
		logInfo("No events found in %s", auditLogger.Path())
	}

	out := cmd.OutOrStdout()
	for _, e := range events {
		if jsonOutput {
			if err := writeJSON(cmd, e); err != nil {
				return err
			}
			continue
		}

		ts := e.Timestamp.Local().Format("2006-01-02 15:04:05")
		switch {
		case e.Type == audit.EventBlocked || e.Type == audit.EventAllowed:
			fmt.Fprintf(out, "[%s] %-8s %s %s (%s)\n", ts, e.Type, e.Op, e.Host, e.Address)
		case e.Details != "":
			fmt.Fprintf(out, "[%s] %-8s (%s)\n", ts, e.Type, e.Details)
		default:
			fmt.Fprintf(out, "[%s] %-8s\n", ts, e.Type)
		}
	}

	if auditClear {
		if err := auditLogger.Remove(); err != nil {
			return fmt.Errorf("failed to remove audit log: %w", err)
		}
		logSuccess("Removed %s", auditLogger.Path())
	}
	return nil
}
