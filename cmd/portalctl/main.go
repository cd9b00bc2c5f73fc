// main.go
//
// Planning portal ticket to job document delivery service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of planning-portal.
// planning-portal is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// planning-portal is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with planning-portal.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/localnerve/planning-portal/internal/app"
	"github.com/localnerve/planning-portal/internal/config"
	"github.com/localnerve/planning-portal/internal/logging"
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var portal *app.App

var rootCmd = &cobra.Command{
	Use:   "portalctl",
	Short: "Planning portal admin CLI",
	Long: `portalctl inspects and repairs the planning portal stores.
It reads the same environment (or .env file) as the server, so it works against
either the JSON data directory or the SQL database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envFile := viper.GetString("env-file"); envFile != "" {
			if err := os.Setenv("ENV_FILE", envFile); err != nil {
				return err
			}
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := logging.New(viper.GetString("log-level"), "console")
		portal, err = app.New(cmd.Context(), cfg, logger)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if portal != nil {
			return portal.Close()
		}
		return nil
	},
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("PORTALCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().String("env-file", "", "path to the .env file")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("env-file", rootCmd.PersistentFlags().Lookup("env-file"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func registerCommands() {
	tickets := &cobra.Command{Use: "tickets", Short: "Inspect tickets"}
	tickets.AddCommand(ticketsListCmd())
	jobs := &cobra.Command{Use: "jobs", Short: "Inspect jobs"}
	jobs.AddCommand(jobsListCmd())
	migrate := &cobra.Command{Use: "migrate", Short: "Rewrite records into the current format"}
	migrate.AddCommand(migrateConsultantsCmd())

	rootCmd.AddCommand(tickets, jobs, recoverCmd(), migrate)
}

func ticketsListCmd() *cobra.Command {
	var kind, status, jobID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickets of one collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, ok := models.ParseTicketKind(kind)
			if !ok {
				return fmt.Errorf("--kind must be work-tickets or consultant-tickets, got %q", kind)
			}
			all, err := portal.Portal.ListTickets(cmd.Context(), k)
			if err != nil {
				return err
			}
			tickets := all[:0]
			for _, t := range all {
				if (status == "" || string(t.Status) == status) && (jobID == "" || t.JobID == jobID) {
					tickets = append(tickets, t)
				}
			}
			if viper.GetBool("json") {
				return printJSON(tickets)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Job", "Work", "Status", "Document", "Returned"})
			for _, t := range tickets {
				doc, returned := "", ""
				if t.CompletedDocument != nil {
					doc = t.CompletedDocument.OriginalName
					returned = t.CompletedDocument.ReturnedAt
				}
				tw.AppendRow(table.Row{t.ID, t.JobID, t.Label(), t.Status, doc, returned})
			}
			tw.AppendFooter(table.Row{"", "", "", "", "Total", len(tickets)})
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", string(models.WorkTickets), "ticket collection (work-tickets, consultant-tickets)")
	cmd.Flags().StringVar(&status, "status", "", "status filter")
	cmd.Flags().StringVar(&jobID, "job", "", "job id filter")
	return cmd
}

func jobsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := portal.Portal.ListJobs(cmd.Context())
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(jobs)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Address", "Stage", "Status", "Documents", "Consultants", "Purchased"})
			for _, j := range jobs {
				consultants := 0
				for _, list := range j.Consultants {
					consultants += len(list)
				}
				tw.AppendRow(table.Row{j.ID, j.Address, j.CurrentStage, j.Status, len(j.Documents), consultants, len(j.PurchasedPrePreparedAssessments)})
			}
			tw.Render()
			return nil
		},
	}
}

func recoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recover",
		Short: "Replay writes left pending by an interrupted request",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := portal.Portal.Recover(cmd.Context())
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(report)
			}
			fmt.Printf("replayed %d, discarded %d, failed %d\n", report.Replayed, report.Discarded, report.Failed)
			if report.Failed > 0 {
				return fmt.Errorf("%d intents could not be replayed", report.Failed)
			}
			return nil
		},
	}
}

func migrateConsultantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consultants",
		Short: "Store every job's consultant categories as arrays",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := portal.Portal.NormalizeConsultants(cmd.Context())
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(map[string]int{"rewritten": n})
			}
			fmt.Printf("rewrote %d job records\n", n)
			return nil
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
