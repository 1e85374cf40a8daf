package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"ecolife/internal/api"
	"ecolife/internal/archive"
	"ecolife/internal/catalog"
	"ecolife/internal/config"
	"ecolife/internal/database"
	"ecolife/internal/models"
	"ecolife/internal/scheduler"
	"ecolife/internal/session"
)

var (
	scheduleLine      int
	scheduleLookahead int
	scheduleHours     map[string]int
	scheduleConveyors int
	scheduleJSON      bool

	tokenOperator string
	tokenTTL      time.Duration
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Compute the preventive maintenance due-list from hour readings",
	Long: `Compute which preventive tasks fall due within the lookahead window.

Examples:
  # Ballistic separator at 140h, all line 1 conveyors at 30h
  ecolife schedule --line 1 --hours 1-Separator-Balistic=140 --conveyors 30

  # JSON output with a 48h window
  ecolife schedule --line 2 --hours 2-Separator-Balistic=950 --lookahead 48 --json
`,
	RunE: runSchedule,
}

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "List archived work orders",
	RunE:  runArchive,
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an operator token for the API",
	RunE:  runToken,
}

func init() {
	scheduleCmd.Flags().IntVar(&scheduleLine, "line", models.Line1, "Production line (1 or 2)")
	scheduleCmd.Flags().IntVar(&scheduleLookahead, "lookahead", scheduler.DefaultLookahead, "Lookahead window in hours")
	scheduleCmd.Flags().StringToIntVar(&scheduleHours, "hours", nil, "Operating hours per equipment id (id=hours)")
	scheduleCmd.Flags().IntVar(&scheduleConveyors, "conveyors", 0, "Operating hours of the conveyor group")
	scheduleCmd.Flags().BoolVar(&scheduleJSON, "json", false, "Print JSON instead of a table")

	tokenCmd.Flags().StringVar(&tokenOperator, "operator", "operator", "Operator name stored in the token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 12*time.Hour, "Token lifetime")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	sessions := session.NewManager(catalog.New(), archive.New(&archive.MemoryStore{}), scheduleLookahead, nil)
	s, err := sessions.Start(scheduleLine)
	if err != nil {
		return err
	}

	if scheduleConveyors > 0 {
		if _, err := s.Registry().SetGroupOperatingHours(scheduleLine, scheduleConveyors); err != nil {
			return err
		}
	}
	ids := make([]string, 0, len(scheduleHours))
	for id := range scheduleHours {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, err := s.Registry().SetOperatingHours(id, scheduleHours[id]); err != nil {
			return err
		}
	}

	due, err := sessions.ComputeSchedule(scheduleLookahead)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if scheduleJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(scheduler.GroupByEquipment(due))
	}

	if len(due) == 0 {
		fmt.Fprintf(out, "Nothing due on line %d in the next %dh\n", scheduleLine, scheduleLookahead)
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DUE IN\tEQUIPMENT\tTASK\tEVERY")
	for _, t := range due {
		fmt.Fprintf(w, "%dh\t%s\t%s\t%dh\n", t.HoursUntilDue, t.EquipmentName, t.Task.Description, t.Task.Frequency)
	}
	return w.Flush()
}

func runArchive(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer database.Close(db)

	orders, err := archive.NewGormStore(db).Load()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tLINE\tTECHNICIAN\tTASKS\tCOMPLETED")
	for _, wo := range orders {
		completed := 0
		for _, t := range wo.Tasks {
			if t.Status == models.TaskStatusCompleted {
				completed++
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\t%d\n", wo.ID, wo.Date, wo.Line, wo.TechnicianName, len(wo.Tasks), completed)
	}
	return w.Flush()
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	token, err := api.IssueToken(cfg.Auth.Secret, tokenOperator, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
