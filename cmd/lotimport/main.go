// Command lotimport loads lot manufacturing dates from a CSV export and
// back-fills inventory lots whose manufacturing date is unknown.
//
//	lotimport -file dates.csv [-env .env] [-dsn "host=... dbname=..."]
package main

import (
	"context"
	"database/sql"
	"flag"
	"os"

	"ruboard/cmd"
	"ruboard/internal/adapters/in/csvimport"
	"ruboard/internal/adapters/out/postgres/lotdates"
	"ruboard/internal/pkg/logging"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	file := flag.String("file", "", "CSV file with lot_number,manufacturing_date rows")
	envFile := flag.String("env", ".env", "path to the .env file")
	dsn := flag.String("dsn", "", "PostgreSQL connection string, overrides DB_* settings")
	flag.Parse()

	configs, err := cmd.LoadConfig(*envFile)
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	logger := logging.Component(logging.New(configs.LogLevel, configs.LogFormat), "lotimport")

	if *file == "" {
		logger.Fatal("-file is required")
	}
	if *dsn == "" {
		*dsn = configs.DSN()
	}

	if err = run(context.Background(), logger, *file, *dsn); err != nil {
		logging.LogError(logger, "lotimport", "main", "import", map[string]string{"file": *file}, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *logrus.Entry, path, dsn string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	parsed, err := csvimport.Parse(f)
	if err != nil {
		return err
	}
	for _, s := range parsed.Skipped {
		logger.WithFields(logrus.Fields{"line": s.Line, "reason": s.Reason}).Warn("row skipped")
	}

	rows := make([]lotdates.Row, 0, len(parsed.Records))
	for _, r := range parsed.Records {
		rows = append(rows, lotdates.Row{LotNumber: r.LotNumber, ManufacturedDate: r.ManufacturedDate})
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	result, err := lotdates.NewStore(db).Import(ctx, rows)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"loaded":     result.Loaded,
		"inserted":   result.Inserted,
		"backfilled": result.Backfilled,
		"skipped":    len(parsed.Skipped),
	}).Info("import finished")
	return nil
}
