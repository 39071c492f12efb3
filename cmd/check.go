package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/audit"
	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/remotedata"
)

var checkCmd = &cobra.Command{
	Use:   "check <url>...",
	Short: "Fetch URLs with the network guard enabled",
	Long: `Enable the network guard for the selected remote data mode and fetch
each URL through the default HTTP client.

Each URL is reported as allowed, blocked, or failed (allowed but the
request itself did not succeed). The command exits with status 2 when any
URL was blocked.

The mode is taken from --remote-data, then $NETGUARD_REMOTE_DATA, then the
config file.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runCheck,
}

var (
	checkRemoteData string
	checkAuditLog   string
	checkTimeout    time.Duration
)

func init() {
	checkCmd.Flags().StringVar(&checkRemoteData, "remote-data", "", "Remote data mode (none, github, astropy, any)")
	checkCmd.Flags().StringVar(&checkAuditLog, "audit-log", "", "Append guard events to this JSONL file")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 10*time.Second, "Per-request timeout")
	rootCmd.AddCommand(checkCmd)
}

// CheckResult is the outcome of fetching one URL.
type CheckResult struct {
	URL     string `json:"url"`
	Verdict string `json:"verdict"`
	Host    string `json:"host,omitempty"`
	Status  string `json:"status,omitempty"`
	Error   string `json:"error,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	for _, raw := range args {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.UsageError(fmt.Sprintf("invalid URL %q (expected http:// or https://)", raw))
		}
	}

	mode, err := checkMode()
	if err != nil {
		return err
	}

	auditLogger, err := checkAuditLogger()
	if err != nil {
		return err
	}

	g := app.Default.NewGuard(auditLogger)

	logging.Debug("checking URLs", "mode", mode, "count", len(args))

	release := remotedata.Apply(g, mode, verbose || cfg.Verbose)
	defer release()

	client := &http.Client{Timeout: checkTimeout}

	blocked := 0
	for _, raw := range args {
		result := fetch(client, raw)
		if result.Verdict == "blocked" {
			blocked++
		}
		if err := printCheckResult(cmd, result); err != nil {
			return err
		}
	}

	if blocked > 0 {
		return errors.BlockedURLs(blocked)
	}
	return nil
}

func fetch(client *http.Client, raw string) CheckResult {
	result := CheckResult{URL: raw}

	resp, err := client.Get(raw)
	if err != nil {
		if host, ok := errors.BlockedHost(err); ok {
			result.Verdict = "blocked"
			result.Host = host
		} else {
			result.Verdict = "failed"
		}
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	result.Verdict = "allowed"
	result.Status = resp.Status
	return result
}

func printCheckResult(cmd *cobra.Command, r CheckResult) error {
	if jsonOutput {
		return writeJSON(cmd, r)
	}

	switch r.Verdict {
	case "allowed":
		logSuccess("allowed %s (%s)", r.URL, r.Status)
	case "blocked":
		logError("blocked %s (host %s)", r.URL, r.Host)
	default:
		logWarning("failed %s: %s", r.URL, r.Error)
	}
	return nil
}

// checkMode picks the remote data mode from the flag, the environment, then
// the config file.
func checkMode() (remotedata.Mode, error) {
	raw := checkRemoteData
	if raw == "" {
		raw = os.Getenv(remotedata.EnvVar)
	}
	if raw == "" {
		raw = cfg.RemoteData
	}

	mode, err := remotedata.ParseMode(raw)
	if err != nil {
		return "", errors.UsageError(err.Error())
	}
	return mode, nil
}

// checkAuditLogger returns the audit logger for --audit-log or the config's
// audit_log, or nil when neither is set.
func checkAuditLogger() (*audit.Logger, error) {
	path, root := checkAuditLog, ""
	if path != "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.ConfigError("failed to get working directory", err)
		}
		root = wd
	} else {
		path, root = cfg.AuditLog, cfgDir
	}
	if path == "" {
		return nil, nil
	}

	resolved, err := config.ResolvePath(root, path)
	if err != nil {
		return nil, errors.ConfigError("invalid audit log path", err)
	}
	logging.Debug("audit log enabled", "path", resolved)
	return audit.NewLogger(resolved), nil
}
