// hrmsctl is a small operational CLI for the HRMS API: login, health probes
// and the day-to-day attendance and leave operations.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hrbuddy/hrms-go/internal/config"
	"github.com/hrbuddy/hrms-go/pkg/hrms"
)

var rootCmd = &cobra.Command{
	Use:          "hrmsctl",
	Short:        "HRMS command-line client",
	Long:         `hrmsctl talks to the HRMS API: authentication, attendance, leaves and health checks.`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("base-url", "", "API base URL (defaults to HRMS_BASE_URL)")
	flags.String("token-file", "", "path for persisted auth token")
	flags.String("env-file", "", "optional .env file to load")
	flags.Bool("verbose", false, "enable debug logging")

	viper.SetEnvPrefix("HRMS")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = viper.BindPFlag("token_file", flags.Lookup("token-file"))
	_ = viper.BindPFlag("env_file", flags.Lookup("env-file"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(attendanceCmd)
	rootCmd.AddCommand(leavesCmd)
	rootCmd.AddCommand(diagCmd)

	attendanceCmd.AddCommand(checkinCmd)
	attendanceCmd.AddCommand(checkoutCmd)
	attendanceCmd.AddCommand(todayCmd)

	leavesCmd.AddCommand(leavesListCmd)
	leavesCmd.AddCommand(leavesBalanceCmd)
}

// newClient builds a client from env config with flag overrides applied.
func newClient() (*hrms.Client, error) {
	cfg, err := config.Load(viper.GetString("env_file"))
	if err != nil {
		return nil, err
	}
	if v := viper.GetString("base_url"); v != "" {
		cfg.BaseURL = v
	}
	if v := viper.GetString("token_file"); v != "" {
		cfg.TokenFile = v
	}
	if cfg.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.TokenFile = home + "/.hrms/token.json"
		}
	}

	opts := &hrms.ClientOptions{
		BaseURL:     cfg.BaseURL,
		Timeout:     cfg.Timeout,
		Token:       cfg.Token,
		TokenFile:   cfg.TokenFile,
		RetryConfig: cfg.RetryConfig(),
		SentryDSN:   cfg.SentryDSN,
	}
	if viper.GetBool("verbose") {
		opts.Logger = hrms.NewDevelopmentLogger()
	}
	if cfg.RateLimit > 0 {
		opts.RateLimiter = hrms.NewRateLimiter(cfg.RateLimit, 1)
	}

	return hrms.NewClient(opts)
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Authenticate and persist the session token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password := os.Getenv("HRMS_PASSWORD")
		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			if _, err := fmt.Scanln(&password); err != nil {
				return fmt.Errorf("read password: %w", err)
			}
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		session, err := client.Auth.Login(ctx, args[0], password)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s (%s)\n", session.Email, session.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Invalidate the session and clear the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.Auth.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Probe API reachability",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		start := time.Now()
		if err := client.Ping(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("OK (%s)\n", time.Since(start).Round(time.Millisecond))
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		profile, err := client.Employees.Profile(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(profile)
	},
}

var employeesCmd = &cobra.Command{
	Use:   "employees [search]",
	Short: "List the employee directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		search := ""
		if len(args) > 0 {
			search = args[0]
		}

		list, err := client.Employees.List(cmd.Context(), nil, search)
		if err != nil {
			return err
		}

		for _, e := range list.Employees {
			fmt.Printf("%-12s %-24s %-16s %s\n", e.EmployeeID, e.Name, e.Department, e.Email)
		}
		fmt.Printf("%d of %d employees\n", len(list.Employees), list.Pagination.Total)
		return nil
	},
}

var attendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Attendance operations",
}

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record today's check-in",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.Attendance.CheckIn(cmd.Context(), &hrms.CheckInParams{})
		if err != nil {
			if hrms.IsExpectedValidation(err) {
				fmt.Println("Already checked in for today")
				return nil
			}
			return err
		}
		if record.CheckInTime != nil {
			fmt.Printf("Checked in at %s\n", record.CheckInTime.Format(time.Kitchen))
		} else {
			fmt.Println("Checked in")
		}
		return nil
	},
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Record today's check-out",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.Attendance.CheckOut(cmd.Context(), &hrms.CheckOutParams{})
		if err != nil {
			if hrms.IsExpectedValidation(err) {
				fmt.Println("Already checked out for today")
				return nil
			}
			return err
		}
		fmt.Printf("Checked out, %.1f hours worked\n", record.WorkHours)
		return nil
	},
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's attendance record",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.Attendance.Today(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(record)
	},
}

var leavesCmd = &cobra.Command{
	Use:   "leaves",
	Short: "Leave operations",
}

var leavesListCmd = &cobra.Command{
	Use:   "list [status]",
	Short: "List leave requests",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		params := &hrms.LeaveListParams{}
		if len(args) > 0 {
			params.Status = args[0]
		}

		list, err := client.Leaves.List(cmd.Context(), params)
		if err != nil {
			return err
		}

		for _, lv := range list.Leaves {
			fmt.Printf("%-10s %-20s %s -> %s  %-8s %s\n",
				lv.Type, lv.EmployeeName, lv.StartDate, lv.EndDate, lv.Status, lv.Reason)
		}
		return nil
	},
}

var leavesBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show remaining leave balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		balance, err := client.Leaves.Balance(cmd.Context())
		if err != nil {
			return err
		}

		for leaveType, remaining := range balance.Balances {
			fmt.Printf("%-12s %.1f\n", leaveType, remaining)
		}
		return nil
	},
}

var diagCmd = &cobra.Command{
	Use:   "diag",
	Short: "Dump the client's diagnostic buffers",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		// Run a probe so the buffers have something to say when the API is
		// down.
		_ = client.Ping(cmd.Context())

		d := client.Diagnostics()
		return printJSON(map[string]interface{}{
			"api":     d.API.Entries(),
			"login":   d.Login.Entries(),
			"network": d.Network.Entries(),
		})
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
