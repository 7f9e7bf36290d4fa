package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"parietal.systems/acqview/internal/application"
	"parietal.systems/acqview/internal/config"
	"parietal.systems/acqview/internal/db"
	"parietal.systems/acqview/pkg/encryption"
	"parietal.systems/acqview/pkg/utils/recname"
)

// importedSuffix marks sidecars that were already processed on a previous run.
const importedSuffix = ".imported"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting importer")

	conf, err := config.LoadConfig(ctx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if conf.DatabaseRetries <= 0 {
		conf.DatabaseRetries = 10
	}

	pool, err := application.OpenDBPoolWithRetry(ctx, *conf)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	dbc, err := db.NewDatabaseConnection(ctx, pool)
	if err != nil {
		slog.Error("failed to create database connection", "error", err)
		os.Exit(1)
	}
	defer dbc.Close()

	encMgr, err := application.InitEncryptionManager()
	if err != nil {
		slog.Error("failed to initialize encryption manager", "error", err)
		os.Exit(1)
	}

	entries, err := os.ReadDir(conf.ImportDir)
	if err != nil {
		slog.Error("failed to read import directory", "dir", conf.ImportDir, "error", err)
		os.Exit(1)
	}

	imported, failed := 0, 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(conf.ImportDir, entry.Name())
		if err := importSidecar(ctx, dbc, encMgr, path); err != nil {
			slog.Error("failed to import sidecar", "path", path, "error", err)
			failed++
			continue
		}

		if err := os.Rename(path, path+importedSuffix); err != nil {
			slog.Warn("failed to mark sidecar as imported", "path", path, "error", err)
		}
		imported++
	}

	slog.Info("Import finished", "imported", imported, "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func importSidecar(ctx context.Context, dbc *db.DatabaseConnection, em *encryption.Manager, path string) error {
	if info, err := os.Stat(path); err == nil {
		slog.Info("importing sidecar", "path", path, "size", humanize.Bytes(uint64(info.Size())))
	}

	sc, err := LoadSidecar(path)
	if err != nil {
		return err
	}

	// Non-fatal: unconventional names usually mean the exporter skipped the
	// standard suffix, not that the data is wrong.
	if !recname.Conventional(sc.Filename, sc.Kind) {
		slog.Warn("recording filename does not follow naming conventions",
			"filename", sc.Filename, "kind", sc.Kind)
	}

	encryptedSubject, err := em.EncryptString(sc.SubjectCode)
	if err != nil {
		return err
	}

	qtx, tx, err := dbc.NewWithTX(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	rec, err := qtx.InsertRecording(ctx, &db.InsertRecordingParams{
		Kind:        db.RecordingKind(sc.Kind),
		AggKind:     sc.AggKind,
		Title:       sc.Title,
		Filename:    sc.Filename,
		SubjectCode: encryptedSubject,
		Comment:     sc.Comment,
		Nave:        sc.Nave,
		TMin:        sc.TMin,
		TMax:        sc.TMax,
		SFreq:       sc.SFreq,
		NTimes:      sc.NTimes,
		FirstSamp:   sc.FirstSamp,
		BaselineMin: sc.BaselineMin,
		BaselineMax: sc.BaselineMax,
		MetaRows:    sc.MetaRows,
		MetaCols:    sc.MetaCols,
		EventCounts: db.CountMap(sc.EventCounts),
		Notes:       sc.Notes,
	})
	if err != nil {
		return err
	}

	if len(sc.Events) > 0 {
		markers := make([]db.EventMarker, len(sc.Events))
		for i, e := range sc.Events {
			markers[i] = db.EventMarker{Sample: e.Sample, Code: e.Code}
		}
		if err := qtx.InsertRecordingEvents(ctx, rec.ID, markers); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	slog.Info("imported recording", "recording_id", rec.ID, "kind", rec.Kind, "title", rec.Title)
	return nil
}
