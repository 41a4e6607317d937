package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"institute-portal-backend/internal/auth"
	"institute-portal-backend/internal/database"
	"institute-portal-backend/internal/database/models"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/seed"
	"institute-portal-backend/internal/service"
	"institute-portal-backend/internal/validation"
)

const cliActor = "portalctl"

func cliContext() context.Context {
	return context.WithValue(context.Background(), logger.ContextKeyEmail, cliActor) //nolint:staticcheck
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openDB()
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		logrus.Info("schema up to date")
		return nil
	},
}

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load units, positions, users and pages from a YAML file",
	Long: `Load the initial organisational data from a YAML file.

Records that already exist (same unit code, position code, user e-mail or
page slug) are kept as they are, so the command can be run more than once.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(seedFile)
		if err != nil {
			return err
		}
		defer f.Close()

		data, err := seed.Parse(f)
		if err != nil {
			return err
		}
		db, _, err := openDB()
		if err != nil {
			return err
		}
		counts, err := seed.Apply(db, data, auth.HashPassword)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"units":     counts.Units,
			"positions": counts.Positions,
			"users":     counts.Users,
			"pages":     counts.Pages,
		}).Info("seed applied")
		return nil
	},
}

var adminEmail, adminName string

// adminPasswordEnv names the variable create-admin reads the initial password
// from; without it the first line of stdin is used
const adminPasswordEnv = "PORTALCTL_ADMIN_PASSWORD"

func readAdminPassword(getenv func(string) string, in io.Reader) (string, error) {
	if p := getenv(adminPasswordEnv); p != "" {
		return p, nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("no password given: set %s or pipe it on stdin", adminPasswordEnv)
	}
	return line, nil
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator account",
	Long: "Create an administrator account. The initial password is read from " +
		adminPasswordEnv + " or, when unset, from the first line of stdin.",
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readAdminPassword(os.Getenv, cmd.InOrStdin())
		if err != nil {
			return err
		}
		db, _, err := openDB()
		if err != nil {
			return err
		}
		users := service.NewUserService(
			repository.NewUserRepository(db),
			repository.NewEmployeeRepository(db),
			auth.HashPassword,
			validation.New(),
		)
		u, err := users.CreateUser(cliContext(), &service.CreateUserRequest{
			Email:    adminEmail,
			FullName: adminName,
			Password: password,
			Role:     string(models.RoleAdmin),
		})
		if err != nil {
			return err
		}
		logrus.WithField("email", u.Email).Info("administrator created")
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk imports from spreadsheets",
}

var importFile string

var importSchoolsCmd = &cobra.Command{
	Use:   "schools",
	Short: "Import schools from an XLSX file",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(importFile)
		if err != nil {
			return err
		}
		defer f.Close()

		db, _, err := openDB()
		if err != nil {
			return err
		}
		schools := service.NewSchoolService(repository.NewSchoolRepository(db), repository.NewFederationRepository(db), validation.New())
		result, err := schools.ImportXLSX(cliContext(), f)
		if err != nil {
			return err
		}
		printImport(cmd.OutOrStdout(), result)
		return nil
	},
}

func printImport(w io.Writer, result *service.ImportResult) {
	fmt.Fprintf(w, "rows: %d, inserted: %d, duplicates: %d, invalid: %d\n",
		result.Total, result.Inserted, len(result.Duplicates), len(result.Invalid))
	for _, d := range result.Duplicates {
		fmt.Fprintf(w, "  duplicate line %d (%s): %s\n", d.Line, d.Key, d.Reason)
	}
	for _, d := range result.Invalid {
		fmt.Fprintf(w, "  invalid line %d (%s): %s\n", d.Line, d.Key, d.Reason)
	}
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Spreadsheet exports",
}

var (
	exportYear, exportMonth int
	exportKind, exportOut   string
)

var exportPayrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Export the entries of a payroll run to XLSX",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openDB()
		if err != nil {
			return err
		}
		runRepo := repository.NewPayrollRunRepository(db)
		run, err := runRepo.GetByPeriod(exportYear, exportMonth, models.PayrollKind(exportKind))
		if err != nil {
			return fmt.Errorf("payroll run %02d/%d (%s): %w", exportMonth, exportYear, exportKind, err)
		}

		out := exportOut
		if out == "" {
			out = fmt.Sprintf("folha-%d-%02d-%s.xlsx", exportYear, exportMonth, exportKind)
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()

		payroll := service.NewPayrollService(runRepo, repository.NewPayrollEntryRepository(db), repository.NewEmployeeRepository(db), validation.New())
		if err := payroll.ExportRun(f, run.ID); err != nil {
			return err
		}
		logrus.WithField("file", out).Info("payroll exported")
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "YAML seed file")
	_ = seedCmd.MarkFlagRequired("file")

	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Administrator e-mail")
	createAdminCmd.Flags().StringVar(&adminName, "name", "", "Full name")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("name")

	importSchoolsCmd.Flags().StringVar(&importFile, "file", "", "XLSX file")
	_ = importSchoolsCmd.MarkFlagRequired("file")

	exportPayrollCmd.Flags().IntVar(&exportYear, "year", 0, "Competence year")
	exportPayrollCmd.Flags().IntVar(&exportMonth, "month", 0, "Competence month (1-12)")
	exportPayrollCmd.Flags().StringVar(&exportKind, "kind", string(models.PayrollKindMonthly), "monthly, thirteenth or supplementary")
	exportPayrollCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default folha-YYYY-MM-kind.xlsx)")
	_ = exportPayrollCmd.MarkFlagRequired("year")
	_ = exportPayrollCmd.MarkFlagRequired("month")
}
