package observer

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/blackbox-bench/harness-core/pkg/logger"

	_ "modernc.org/sqlite"
)

// SQLiteObserver persists the evaluation trace of one experiment run into a
// SQLite database under the configured result folder.
type SQLiteObserver struct {
	runID   string
	options Options

	mu             sync.Mutex
	db             *sql.DB
	currentProblem string
	recorded       int64
	recordErr      error // first insert failure, reported once on Close
}

// NewSQLite constructs an observer from a name and an options string, rooted
// at root. The name identifies the backend ("sqlite"); the options string
// carries result folder and algorithm metadata, see ParseOptions.
func NewSQLite(name, optionString, root string) (*SQLiteObserver, error) {
	if name != "sqlite" {
		return nil, fmt.Errorf("unsupported observer backend %q", name)
	}
	opts, err := ParseOptions(optionString)
	if err != nil {
		return nil, err
	}

	folder := filepath.Join(root, opts.ResultFolder)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("create result folder %s: %w", folder, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(folder, "evaluations.db"))
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	o := &SQLiteObserver{
		runID:   uuid.NewString(),
		options: opts,
		db:      db,
	}
	if _, err := db.ExecContext(ctx, `
		INSERT INTO runs (id, algorithm_name, algorithm_info)
		VALUES (?, ?, ?)
	`, o.runID, opts.AlgorithmName, opts.AlgorithmInfo); err != nil {
		_ = db.Close()
		return nil, err
	}
	return o, nil
}

// RunID returns the identifier of this observer session
func (o *SQLiteObserver) RunID() string {
	return o.runID
}

func (o *SQLiteObserver) ObserveProblem(problemID string, dimension int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.currentProblem = problemID
	_, err := o.db.ExecContext(context.Background(), `
		INSERT INTO problems (run_id, id, dimension)
		VALUES (?, ?, ?)
		ON CONFLICT(run_id, id) DO NOTHING
	`, o.runID, problemID, dimension)
	o.noteErr(err)
}

func (o *SQLiteObserver) Record(ev Evaluation) {
	o.mu.Lock()
	defer o.mu.Unlock()

	x, err := json.Marshal(ev.X)
	if err != nil {
		o.noteErr(err)
		return
	}
	y, err := json.Marshal(ev.Y)
	if err != nil {
		o.noteErr(err)
		return
	}

	_, err = o.db.ExecContext(context.Background(), `
		INSERT INTO evaluations (run_id, problem_id, kind, ordinal, x, y)
		VALUES (?, ?, ?, ?, ?, ?)
	`, o.runID, ev.ProblemID, string(ev.Kind), ev.Ordinal, string(x), string(y))
	if err == nil {
		o.recorded++
	}
	o.noteErr(err)
}

func (o *SQLiteObserver) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.db == nil {
		return nil
	}
	logger.Info("observer closed",
		"run_id", o.runID,
		"evaluations", humanize.Comma(o.recorded),
		"result_folder", o.options.ResultFolder)

	err := o.db.Close()
	o.db = nil
	if o.recordErr != nil {
		return fmt.Errorf("evaluation trace incomplete: %w", o.recordErr)
	}
	return err
}

// Recorded returns the number of evaluations persisted so far
func (o *SQLiteObserver) Recorded() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.recorded
}

func (o *SQLiteObserver) noteErr(err error) {
	if err == nil || o.recordErr != nil {
		return
	}
	o.recordErr = err
	logger.Warn("observer record failed", "error", err)
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			algorithm_name TEXT NOT NULL,
			algorithm_info TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS problems (
			run_id TEXT NOT NULL,
			id TEXT NOT NULL,
			dimension INTEGER NOT NULL,
			PRIMARY KEY (run_id, id)
		);
		CREATE TABLE IF NOT EXISTS evaluations (
			run_id TEXT NOT NULL,
			problem_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			ordinal INTEGER NOT NULL,
			x TEXT NOT NULL,
			y TEXT NOT NULL
		);
	`)
	return err
}
