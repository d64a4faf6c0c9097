// Command seed loads a YAML catalogue into the configured store, or
// writes the store's catalogue out as YAML.
//
//	seed -file catalogue.yaml
//	seed -export > catalogue.yaml
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/tutorly/quizengine/internal/infrastructure/config"
	"github.com/tutorly/quizengine/internal/seed"
	"github.com/tutorly/quizengine/internal/store"
)

func main() {
	file := flag.String("file", "catalogue.yaml", "catalogue to import")
	export := flag.Bool("export", false, "write the stored catalogue to stdout instead of importing")
	flag.Parse()

	cfg := config.LoadStorage()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var db store.Store
	var err error
	if cfg.StoreDriver == "mongo" {
		db, err = store.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	} else {
		db, err = store.NewSQLite(cfg.SQLitePath)
	}
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if *export {
		c, err := seed.Export(ctx, db)
		if err != nil {
			logger.Error("export failed", "error", err)
			os.Exit(1)
		}
		if err := seed.WriteYAML(os.Stdout, c); err != nil {
			logger.Error("failed to write catalogue", "error", err)
			os.Exit(1)
		}
		return
	}

	c, err := seed.LoadFile(*file)
	if err != nil {
		logger.Error("failed to load catalogue", "file", *file, "error", err)
		os.Exit(1)
	}

	res, err := seed.Import(ctx, db, c, logger)
	if err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}

	logger.Info("catalogue imported",
		"subjects", res.SubjectsCreated,
		"units", res.UnitsCreated,
		"lessons", res.LessonsCreated,
		"questions", res.QuestionsCreated,
		"progress", res.ProgressRecorded,
		"skipped", res.Skipped,
	)
}
